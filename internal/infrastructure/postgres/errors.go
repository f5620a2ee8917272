package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-ddd-recipe-api/internal/domain/repository"
)

const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			if pgErr.ConstraintName == "users_email_lower_idx" {
				return repository.ErrDuplicateEmail
			}
		case codeForeignKeyViolation:
			return errors.Join(repository.ErrNotFound, err)
		case codeSerializationFailure, codeDeadlockDetected:
			return errors.Join(repository.ErrConcurrentUpdate, err)
		}
	}
	return err
}

// isUUID guards queries against uuid columns so malformed ids read as "not found"
// rather than a syntax error from the server.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
