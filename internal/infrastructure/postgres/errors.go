package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/game-admin-api/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// translate maps driver errors on writes and lookups to domain sentinels.
// Anything unrecognised is returned unchanged and surfaces as a storage failure.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("record not found: %w", domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("duplicate value violates %s: %w", pgErr.ConstraintName, domain.ErrConflict)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("referenced record does not exist (%s): %w", pgErr.ConstraintName, domain.ErrBadRequest)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
		return fmt.Errorf("invalid value (%s): %w", pgErr.Message, domain.ErrBadRequest)
	}
	return err
}

// translateDelete treats a foreign key violation as a conflict: some row still
// references the one being removed.
func translateDelete(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return fmt.Errorf("record is still referenced by %s: %w", pgErr.TableName, domain.ErrConflict)
	}
	return translate(err)
}
