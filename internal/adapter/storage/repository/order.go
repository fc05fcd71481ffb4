package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/dinehall/backend/internal/core/domain"
	"github.com/dinehall/backend/internal/core/port"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{"id", "user_id", "store_id", "status", "total_price", "order_time", "notes", "dine_option"}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.StoreID,
		&order.Status,
		&order.TotalPrice,
		&order.OrderTime,
		&order.Notes,
		&order.DineOption,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &order, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	statement := r.db.QueryBuilder.Insert("orders").
		Columns("user_id", "store_id", "status", "total_price", "order_time", "notes", "dine_option").
		Values(order.UserID, order.StoreID, order.Status, order.TotalPrice,
			order.OrderTime, order.Notes, order.DineOption).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&order.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return order, nil
}

func (r *Repository) readOrder(ctx context.Context, q querier, orderID uint64, forUpdate bool) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	order.Items, err = r.readLineItems(ctx, q, orderID, forUpdate)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *Repository) readLineItems(ctx context.Context, q querier, orderID uint64, forUpdate bool) ([]domain.LineItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "item_id", "quantity", "unit_price", "size").
		From("order_details").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")
	if forUpdate {
		statement = statement.Suffix("FOR UPDATE")
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	items := make([]domain.LineItem, 0)
	for rows.Next() {
		item := domain.LineItem{}
		err := rows.Scan(
			&item.DetailID,
			&item.OrderID,
			&item.ItemID,
			&item.Quantity,
			&item.UnitPrice,
			&item.Size,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	return r.readOrder(ctx, r.db, orderID, false)
}

func (r *Repository) listOrders(ctx context.Context, where any) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("order_time DESC")
	if where != nil {
		statement = statement.Where(where)
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

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.StoreID,
			&order.Status,
			&order.TotalPrice,
			&order.OrderTime,
			&order.Notes,
			&order.DineOption,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range list {
		order.Items, err = r.readLineItems(ctx, r.db, order.ID, false)
		if err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"user_id": userID})
}

func (r *Repository) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return r.listOrders(ctx, nil)
}

// ExecOrderTransition wraps one lifecycle transition: it opens a transaction,
// locks the order row and its line items, hands a scope to fn and commits
// everything fn wrote, or rolls it all back on any error.
func (r *Repository) ExecOrderTransition(ctx context.Context, orderID uint64, fn port.TransitionFn) (*domain.Order, error) {
	var result *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		order, err := r.readOrder(ctx, tx, orderID, true)
		if err != nil {
			return err
		}

		scope := &transitionScope{repo: r, tx: tx, order: order}
		if err := fn(ctx, scope); err != nil {
			return err
		}

		result = scope.order
		return nil
	})
	if err != nil {
		return nil, translateError(err)
	}
	return result, nil
}
