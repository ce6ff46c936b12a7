package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
)

// Tx is an opaque transaction handle. Its concrete type is infra-defined
// (pgx.Tx for Postgres); repositories must accept nil for the
// non-transactional path.
type Tx interface{}

// NoTX marks a non-transactional repository call.
var NoTX interface{}

// TransactionManager runs fn inside a single database transaction, passing
// the transaction handle via tx. If fn returns an error the transaction is
// rolled back, otherwise it is committed. Use-case code depends on this
// interface so no driver transaction types leak out of infra.
type TransactionManager interface {
	WithTx(ctx context.Context, txOpt pgx.TxOptions, fn func(ctx context.Context, tx Tx) error) error
}
