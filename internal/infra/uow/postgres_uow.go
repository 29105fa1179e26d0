package uow

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxRetries   = 3
	baseBackoff  = 10 * time.Millisecond
	maxBackoff   = 100 * time.Millisecond
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

type pgTx struct {
	tx    pgx.Tx
	reads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX                 { return t.tx }
func (t *pgTx) Reads() shared.CommandReads  { return t.reads }

// PostgresUoW runs command sequences against a pgx pool. Transaction support
// is decided once at construction and never probed per request.
type PostgresUoW struct {
	pool       *pgxpool.Pool
	reads      shared.CommandReads
	supportsTx bool
}

func NewPostgresUoW(pool *pgxpool.Pool, reads shared.CommandReads, supportsTx bool) *PostgresUoW {
	return &PostgresUoW{pool: pool, reads: reads, supportsTx: supportsTx}
}

func (u *PostgresUoW) SupportsTx() bool           { return u.supportsTx }
func (u *PostgresUoW) Reads() shared.CommandReads { return u.reads }

// Within executes fn inside a transaction, retrying on serialization
// failures and deadlocks with jittered backoff.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := baseBackoff << attempt
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			jitter := time.Duration(rand.Int63n(int64(backoff)))
			select {
			case <-time.After(backoff + jitter):
			case <-ctx.Done():
				return errs.Wrap(ctx.Err(), "transaction retry interrupted")
			}
		}

		lastErr = u.runOnce(ctx, fn)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
	}
	return errs.Wrap(lastErr, "transaction retries exhausted")
}

func (u *PostgresUoW) runOnce(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return errs.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(ctx, &pgTx{tx: tx, reads: u.reads}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Wrap(err, "committing transaction")
	}
	return nil
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}
