package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification says whether a failed database operation is worth
// retrying.
type ErrorClassification int

const (
	// NonRetryable covers everything that would fail the same way again:
	// constraint violations, bad SQL, data exceptions, and any error the
	// classifier does not recognise.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient conditions: dropped connections,
	// serialization failures, deadlock rollbacks.
	Retryable
)

// retryablePgCodes is the set of PostgreSQL error codes treated as
// transient: class 08 (connection exceptions), class 40 (transaction
// rollback) and 57P03 "cannot connect now". See the errcodes appendix of
// the PostgreSQL manual.
var retryablePgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// PostgresErrorClassifier implements [ErrorClassificator] over the error
// codes surfaced by the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and looks its code up in the
// retryable set. Nil errors and non-driver errors are NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	if _, transient := retryablePgCodes[pgErr.Code]; transient {
		return Retryable
	}
	return NonRetryable
}
