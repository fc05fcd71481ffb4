package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/dinehall/backend/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

// transitionScope implements port.TransitionScope on top of an open pgx
// transaction. Every read locks its row; nothing is visible outside the
// transaction until ExecOrderTransition commits.
type transitionScope struct {
	repo  *Repository
	tx    pgx.Tx
	order *domain.Order
}

func (s *transitionScope) Order() *domain.Order {
	return s.order
}

func (s *transitionScope) SaveOrder(ctx context.Context, order *domain.Order) error {
	statement := s.repo.db.QueryBuilder.Update("orders").
		Set("status", order.Status).
		Set("total_price", order.TotalPrice).
		Set("notes", order.Notes).
		Set("dine_option", order.DineOption).
		Where(sq.Eq{"id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := s.tx.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	s.order = order
	return nil
}

func (s *transitionScope) DeleteOrder(ctx context.Context) error {
	statement := s.repo.db.QueryBuilder.Delete("orders").
		Where(sq.Eq{"id": s.order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = s.tx.Exec(ctx, sql, args...)
	return translateError(err)
}

func (s *transitionScope) InsertLineItem(ctx context.Context, item *domain.LineItem) (*domain.LineItem, error) {
	statement := s.repo.db.QueryBuilder.Insert("order_details").
		Columns("order_id", "item_id", "quantity", "unit_price", "size").
		Values(item.OrderID, item.ItemID, item.Quantity, item.UnitPrice, item.Size).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = s.tx.QueryRow(ctx, sql, args...).Scan(&item.DetailID)
	if err != nil {
		return nil, translateError(err)
	}
	return item, nil
}

func (s *transitionScope) UpdateLineItem(ctx context.Context, item *domain.LineItem) error {
	statement := s.repo.db.QueryBuilder.Update("order_details").
		Set("quantity", item.Quantity).
		Set("unit_price", item.UnitPrice).
		Set("size", item.Size).
		Where(sq.Eq{"id": item.DetailID, "order_id": item.OrderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := s.tx.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (s *transitionScope) DeleteLineItem(ctx context.Context, detailID uint64) error {
	statement := s.repo.db.QueryBuilder.Delete("order_details").
		Where(sq.Eq{"id": detailID, "order_id": s.order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := s.tx.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (s *transitionScope) MenuItemForUpdate(ctx context.Context, itemID uint64) (*domain.MenuItem, error) {
	statement := s.repo.db.QueryBuilder.
		Select(menuItemColumns...).
		From("menu_items").
		Where(sq.Eq{"id": itemID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanMenuItem(s.tx.QueryRow(ctx, sql, args...))
}

func (s *transitionScope) SetMenuItemStock(ctx context.Context, itemID uint64, stock int32) error {
	statement := s.repo.db.QueryBuilder.Update("menu_items").
		Set("stock", stock).
		Where(sq.Eq{"id": itemID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := s.tx.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (s *transitionScope) UserForUpdate(ctx context.Context, userID uint64) (*domain.User, error) {
	statement := s.repo.db.QueryBuilder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanUser(s.tx.QueryRow(ctx, sql, args...))
}

func (s *transitionScope) SetUserBalance(ctx context.Context, userID uint64, balance decimal.Decimal) error {
	statement := s.repo.db.QueryBuilder.Update("users").
		Set("balance", balance).
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := s.tx.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (s *transitionScope) UserCouponForUpdate(ctx context.Context, userCouponID uint64) (*domain.UserCoupon, error) {
	statement := s.repo.db.QueryBuilder.
		Select("id", "user_id", "coupon_id", "is_used").
		From("user_coupons").
		Where(sq.Eq{"id": userCouponID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	uc := domain.UserCoupon{}
	err = s.tx.QueryRow(ctx, sql, args...).Scan(&uc.ID, &uc.UserID, &uc.CouponID, &uc.IsUsed)
	if err != nil {
		return nil, translateError(err)
	}
	return &uc, nil
}

func (s *transitionScope) ReadCoupon(ctx context.Context, couponID uint64) (*domain.Coupon, error) {
	return s.repo.readCoupon(ctx, s.tx, sq.Eq{"id": couponID})
}

// MarkUserCouponUsed is a compare-and-set: the is_used filter makes a lost
// race visible as zero affected rows.
func (s *transitionScope) MarkUserCouponUsed(ctx context.Context, userCouponID uint64) error {
	statement := s.repo.db.QueryBuilder.Update("user_coupons").
		Set("is_used", true).
		Where(sq.Eq{"id": userCouponID, "is_used": false})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := s.tx.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrConcurrencyConflict
	}
	return nil
}
