package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/bond_catalog/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the SQLSTATE PostgreSQL reports for a broken UNIQUE constraint.
const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Ping verifies that the pool can reach the database.
func (r *BaseRepository) Ping(ctx context.Context) error {
	if err := r.Pool.Ping(ctx); err != nil {
		return apperrors.NewAppError(500, "database unreachable", err)
	}
	return nil
}

// isUniqueViolation reports whether err was raised by a UNIQUE constraint.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
