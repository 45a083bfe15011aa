package repository

import (
	"context"
	"fmt"

	"tam-survey/internal/domain"
	"tam-survey/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type txKey struct{}

// GetExecutor returns the transaction carried by ctx, or db outside one.
// Repositories call it for every statement so the same adapter works in both.
func GetExecutor(ctx context.Context, db DBTX) DBTX {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}

// TransactionManagerAdapter runs survey writes (questionnaire creation,
// draft saving and submission) atomically.
type TransactionManagerAdapter struct {
	db *sqlx.DB
}

func NewTransactionManagerAdapter(db *sqlx.DB) domain.TransactionManager {
	return &TransactionManagerAdapter{db: db}
}

// WithTransaction commits when fn returns nil. An error or a panic in fn
// rolls back; a nested call joins the outer transaction.
func (m *TransactionManagerAdapter) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, nested := ctx.Value(txKey{}).(*sqlx.Tx); nested {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Get().Error("Survey transaction rollback failed", zap.Error(rbErr))
			if err != nil {
				err = fmt.Errorf("rollback failed: %v: %w", rbErr, err)
			}
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		committed = true // a failed commit has already ended the transaction
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return nil
}
