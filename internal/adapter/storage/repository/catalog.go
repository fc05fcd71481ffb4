package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/dinehall/backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

var menuItemColumns = []string{"id", "store_id", "name", "description", "category", "image_url", "small_price", "large_price", "stock"}

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	item := domain.MenuItem{}
	err := row.Scan(
		&item.ID,
		&item.StoreID,
		&item.Name,
		&item.Description,
		&item.Category,
		&item.ImageURL,
		&item.SmallPrice,
		&item.LargePrice,
		&item.Stock,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

func (r *Repository) CreateStore(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	statement := r.db.QueryBuilder.Insert("stores").
		Columns("name", "location").
		Values(store.Name, store.Location).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&store.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return store, nil
}

func (r *Repository) ReadStore(ctx context.Context, storeID uint64) (*domain.Store, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "location").
		From("stores").
		Where(sq.Eq{"id": storeID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	store := domain.Store{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&store.ID, &store.Name, &store.Location)
	if err != nil {
		return nil, translateError(err)
	}
	return &store, nil
}

func (r *Repository) ListStores(ctx context.Context) ([]*domain.Store, error) {
	statement := r.db.QueryBuilder.
		Select("id", "name", "location").
		From("stores").
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	list := make([]*domain.Store, 0)
	for rows.Next() {
		store := domain.Store{}
		if err := rows.Scan(&store.ID, &store.Name, &store.Location); err != nil {
			return nil, err
		}
		list = append(list, &store)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) UpdateStore(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	statement := r.db.QueryBuilder.Update("stores").
		Set("name", store.Name).
		Set("location", store.Location).
		Where(sq.Eq{"id": store.ID})

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
	return store, nil
}

func (r *Repository) DeleteStore(ctx context.Context, storeID uint64) error {
	statement := r.db.QueryBuilder.Delete("stores").
		Where(sq.Eq{"id": storeID})

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

func (r *Repository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	statement := r.db.QueryBuilder.Insert("menu_items").
		Columns("store_id", "name", "description", "category", "image_url", "small_price", "large_price", "stock").
		Values(item.StoreID, item.Name, item.Description, item.Category,
			item.ImageURL, item.SmallPrice, item.LargePrice, item.Stock).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&item.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return item, nil
}

func (r *Repository) ReadMenuItem(ctx context.Context, itemID uint64) (*domain.MenuItem, error) {
	statement := r.db.QueryBuilder.
		Select(menuItemColumns...).
		From("menu_items").
		Where(sq.Eq{"id": itemID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanMenuItem(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) queryMenuItems(ctx context.Context, statement sq.SelectBuilder) ([]*domain.MenuItem, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	list := make([]*domain.MenuItem, 0)
	for rows.Next() {
		item := domain.MenuItem{}
		err := rows.Scan(
			&item.ID,
			&item.StoreID,
			&item.Name,
			&item.Description,
			&item.Category,
			&item.ImageURL,
			&item.SmallPrice,
			&item.LargePrice,
			&item.Stock,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) ListMenuItems(ctx context.Context) ([]*domain.MenuItem, error) {
	return r.queryMenuItems(ctx, r.db.QueryBuilder.
		Select(menuItemColumns...).
		From("menu_items").
		OrderBy("id"))
}

func (r *Repository) ListMenuItemsByStore(ctx context.Context, storeID uint64) ([]*domain.MenuItem, error) {
	return r.queryMenuItems(ctx, r.db.QueryBuilder.
		Select(menuItemColumns...).
		From("menu_items").
		Where(sq.Eq{"store_id": storeID}).
		OrderBy("id"))
}

func (r *Repository) SearchMenuItems(ctx context.Context, query string) ([]*domain.MenuItem, error) {
	pattern := "%" + query + "%"
	return r.queryMenuItems(ctx, r.db.QueryBuilder.
		Select(menuItemColumns...).
		From("menu_items").
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"category": pattern},
		}).
		OrderBy("id"))
}

// UpdateMenuItem rewrites catalog fields only. Stock moves exclusively
// through order transitions.
func (r *Repository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	statement := r.db.QueryBuilder.Update("menu_items").
		Set("name", item.Name).
		Set("description", item.Description).
		Set("category", item.Category).
		Set("image_url", item.ImageURL).
		Set("small_price", item.SmallPrice).
		Set("large_price", item.LargePrice).
		Where(sq.Eq{"id": item.ID})

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
	return r.ReadMenuItem(ctx, item.ID)
}

func (r *Repository) DeleteMenuItem(ctx context.Context, itemID uint64) error {
	statement := r.db.QueryBuilder.Delete("menu_items").
		Where(sq.Eq{"id": itemID})

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

func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	statement := r.db.QueryBuilder.Insert("reviews").
		Columns("user_id", "item_id", "rating", "comment", "review_time").
		Values(review.UserID, review.ItemID, review.Rating, review.Comment, review.ReviewTime).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&review.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return review, nil
}

func (r *Repository) ReadReview(ctx context.Context, reviewID uint64) (*domain.Review, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "item_id", "rating", "comment", "review_time").
		From("reviews").
		Where(sq.Eq{"id": reviewID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	review := domain.Review{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&review.ID,
		&review.UserID,
		&review.ItemID,
		&review.Rating,
		&review.Comment,
		&review.ReviewTime,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &review, nil
}

func (r *Repository) ListReviewsByItem(ctx context.Context, itemID uint64) ([]*domain.Review, error) {
	statement := r.db.QueryBuilder.
		Select("id", "user_id", "item_id", "rating", "comment", "review_time").
		From("reviews").
		Where(sq.Eq{"item_id": itemID}).
		OrderBy("review_time DESC")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	list := make([]*domain.Review, 0)
	for rows.Next() {
		review := domain.Review{}
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.ItemID,
			&review.Rating,
			&review.Comment,
			&review.ReviewTime,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) UpdateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	statement := r.db.QueryBuilder.Update("reviews").
		Set("rating", review.Rating).
		Set("comment", review.Comment).
		Where(sq.Eq{"id": review.ID})

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
	return r.ReadReview(ctx, review.ID)
}

func (r *Repository) DeleteReview(ctx context.Context, reviewID uint64) error {
	statement := r.db.QueryBuilder.Delete("reviews").
		Where(sq.Eq{"id": reviewID})

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
