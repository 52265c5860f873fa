package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionManager interface {
	BeginTx(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	// Tx exposes the pgx handle for BaseRepository.WithTx.
	Tx() pgx.Tx
}

// PoolTransactionManager opens read-committed transactions on a pool.
type PoolTransactionManager struct {
	pool *pgxpool.Pool
}

func NewTransactionManager(pool *pgxpool.Pool) TransactionManager {
	return &PoolTransactionManager{pool: pool}
}

func (m *PoolTransactionManager) BeginTx(ctx context.Context) (Transaction, error) {
	tx, err := m.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return pgxTransaction{tx: tx}, nil
}

type pgxTransaction struct {
	tx pgx.Tx
}

func (t pgxTransaction) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t pgxTransaction) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }
func (t pgxTransaction) Tx() pgx.Tx                         { return t.tx }

// RunInTx begins a transaction, hands it to fn and commits when fn returns
// nil. Any error from fn rolls back.
func RunInTx(ctx context.Context, m TransactionManager, fn func(tx pgx.Tx) error) error {
	txn, err := m.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = txn.Rollback(ctx) }()

	if err := fn(txn.Tx()); err != nil {
		return err
	}
	if err := txn.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
