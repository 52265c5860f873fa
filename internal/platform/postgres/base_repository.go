package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, arguments ...any) pgx.Row
}

// BaseRepository bundles the querier and a dollar-placeholder statement
// builder shared by every gallery repository.
type BaseRepository struct {
	DB Querier
	SB sq.StatementBuilderType
}

func NewBaseRepository(db *pgxpool.Pool) BaseRepository {
	return BaseRepository{
		DB: db,
		SB: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// WithTx returns a copy bound to tx.
func (b BaseRepository) WithTx(tx pgx.Tx) BaseRepository {
	return BaseRepository{DB: tx, SB: b.SB}
}

// Count runs a SELECT COUNT(*) builder and scans the single result.
func (b BaseRepository) Count(ctx context.Context, qb sq.SelectBuilder) (int, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var count int
	if err := b.DB.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return count, nil
}

// Exists wraps qb in SELECT EXISTS(...).
func (b BaseRepository) Exists(ctx context.Context, qb sq.SelectBuilder) (bool, error) {
	sub, args, err := qb.ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	var exists bool
	if err := b.DB.QueryRow(ctx, fmt.Sprintf("SELECT EXISTS(%s)", sub), args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}
	return exists, nil
}

// IsUniqueViolation reports whether err carries a unique_violation from
// the server.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
