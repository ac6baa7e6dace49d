package repositories

import (
	"errors"

	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// nullableString converts a null wrapper to a bind value, mapping the
// invalid state to SQL NULL.
func nullableString(v null.String) interface{} {
	if !v.Valid {
		return nil
	}
	return v.String
}

func nullableUint64(v null.Uint64) interface{} {
	if !v.Valid {
		return nil
	}
	return v.Uint64
}

// translateError maps driver-level failures onto the package sentinels the
// service layer understands.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperrors.ErrConflict
		case "23503":
			return apperrors.NewHttpError(400, "Invalid reference", err, nil)
		}
	}
	return err
}
