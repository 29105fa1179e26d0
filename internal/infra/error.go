package infra

import (
	"errors"

	"shuttlebook/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
	pgErrCodeForeignKeyViolated = "23503"
)

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies a low-level database error into a repository kind.
// Unique and exclusion violations both map to KindConflict since both guard
// the same invariant (no two confirmed bookings on one resource overlap).
func WrapRepoErr(msg string, err error) error {
	kind := KindDBFailure
	var constraint string

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		kind = KindNotFound
	case errors.As(err, &pgErr):
		constraint = pgErr.ConstraintName
		switch pgErr.Code {
		case pgErrCodeUniqueViolation, pgErrCodeExclusionViolation:
			kind = KindConflict
		case pgErrCodeForeignKeyViolated:
			kind = KindForeignKeyViolated
		}
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: errs.Wrap(err, msg)}
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// ConstraintName returns the violated constraint for conflict errors, empty
// otherwise.
func ConstraintName(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}
