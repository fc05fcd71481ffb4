package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/dinehall/backend/internal/core/domain"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

var userColumns = []string{"id", "login", "password", "phone", "role", "balance", "registered_at"}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := domain.User{}
	err := row.Scan(
		&user.ID,
		&user.Login,
		&user.Password,
		&user.Phone,
		&user.Role,
		&user.Balance,
		&user.RegisteredAt,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.Insert("users").
		Columns("login", "password", "phone", "role", "balance", "registered_at").
		Values(user.Login, user.Password, user.Phone, user.Role, user.Balance, user.RegisteredAt).
		Suffix("RETURNING id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&user.ID)
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"login": login})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ReadUser(ctx context.Context, userID uint64) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

func (r *Repository) ListUsers(ctx context.Context) ([]*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select(userColumns...).
		From("users").
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

	list := make([]*domain.User, 0)
	for rows.Next() {
		user := domain.User{}
		err := rows.Scan(
			&user.ID,
			&user.Login,
			&user.Password,
			&user.Phone,
			&user.Role,
			&user.Balance,
			&user.RegisteredAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) UpdateUserPassword(ctx context.Context, userID uint64, password string) error {
	statement := r.db.QueryBuilder.Update("users").
		Set("password", password).
		Where(sq.Eq{"id": userID})

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

// CreditUserBalance adds to a wallet under a row lock, isolated from any
// in-flight order transition touching the same user.
func (r *Repository) CreditUserBalance(ctx context.Context, userID uint64, amount decimal.Decimal) (*domain.User, error) {
	var user *domain.User

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"id": userID}).
			Suffix("FOR UPDATE")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		user, err = scanUser(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		user.Balance, err = user.Balance.Add(amount)
		if err != nil {
			return err
		}

		update := r.db.QueryBuilder.Update("users").
			Set("balance", user.Balance).
			Where(sq.Eq{"id": userID})

		sql, args, err = update.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}
