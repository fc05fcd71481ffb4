package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/dinehall/backend/internal/core/domain"
)

var couponColumns = []string{"id", "code", "discount", "min_purchase", "expires_at", "is_active"}

func (r *Repository) readCoupon(ctx context.Context, q querier, where any) (*domain.Coupon, error) {
	statement := r.db.QueryBuilder.
		Select(couponColumns...).
		From("coupons").
		Where(where)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	coupon := domain.Coupon{}
	err = q.QueryRow(ctx, sql, args...).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.Discount,
		&coupon.MinPurchase,
		&coupon.ExpiresAt,
		&coupon.IsActive,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &coupon, nil
}

func (r *Repository) CreateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	statement := r.db.QueryBuilder.Insert("coupons").
		Columns("code", "discount", "min_purchase", "expires_at", "is_active").
		Values(coupon.Code, coupon.Discount, coupon.MinPurchase, coupon.ExpiresAt, coupon.IsActive).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&coupon.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return coupon, nil
}

func (r *Repository) ReadCoupon(ctx context.Context, couponID uint64) (*domain.Coupon, error) {
	return r.readCoupon(ctx, r.db, sq.Eq{"id": couponID})
}

func (r *Repository) ReadCouponByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	return r.readCoupon(ctx, r.db, sq.Eq{"code": code})
}

func (r *Repository) UpdateCoupon(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error) {
	statement := r.db.QueryBuilder.Update("coupons").
		Set("discount", coupon.Discount).
		Set("min_purchase", coupon.MinPurchase).
		Set("expires_at", coupon.ExpiresAt).
		Set("is_active", coupon.IsActive).
		Where(sq.Eq{"id": coupon.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return nil, domain.ErrDataNotFound
	}
	return coupon, nil
}

func (r *Repository) DeleteCoupon(ctx context.Context, couponID uint64) error {
	statement := r.db.QueryBuilder.Delete("coupons").
		Where(sq.Eq{"id": couponID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) ListActiveCoupons(ctx context.Context, now time.Time) ([]*domain.Coupon, error) {
	statement := r.db.QueryBuilder.
		Select(couponColumns...).
		From("coupons").
		Where(sq.Eq{"is_active": true}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("expires_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	list := make([]*domain.Coupon, 0)
	for rows.Next() {
		coupon := domain.Coupon{}
		err := rows.Scan(
			&coupon.ID,
			&coupon.Code,
			&coupon.Discount,
			&coupon.MinPurchase,
			&coupon.ExpiresAt,
			&coupon.IsActive,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &coupon)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) AssignUserCoupon(ctx context.Context, uc *domain.UserCoupon) (*domain.UserCoupon, error) {
	statement := r.db.QueryBuilder.Insert("user_coupons").
		Columns("user_id", "coupon_id", "is_used").
		Values(uc.UserID, uc.CouponID, uc.IsUsed).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&uc.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return uc, nil
}

func (r *Repository) ReadUserCoupon(ctx context.Context, userCouponID uint64) (*domain.UserCoupon, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "coupon_id", "is_used").
		From("user_coupons").
		Where(sq.Eq{"id": userCouponID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	uc := domain.UserCoupon{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&uc.ID, &uc.UserID, &uc.CouponID, &uc.IsUsed)
	if err != nil {
		return nil, translateError(err)
	}
	return &uc, nil
}

func (r *Repository) ListUserCoupons(ctx context.Context, userID uint64, used *bool) ([]*domain.UserCoupon, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "coupon_id", "is_used").
		From("user_coupons").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")
	if used != nil {
		statement = statement.Where(sq.Eq{"is_used": *used})
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	list := make([]*domain.UserCoupon, 0)
	for rows.Next() {
		uc := domain.UserCoupon{}
		if err := rows.Scan(&uc.ID, &uc.UserID, &uc.CouponID, &uc.IsUsed); err != nil {
			return nil, err
		}
		list = append(list, &uc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) CountUserCouponsByCoupon(ctx context.Context, couponID uint64) (int64, error) {
	statement := r.db.QueryBuilder.
		Select("count(*)").
		From("user_coupons").
		Where(sq.Eq{"coupon_id": couponID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
