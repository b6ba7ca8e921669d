package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/offertmvp/offert-api/internal/application/quote"
	"github.com/offertmvp/offert-api/internal/application/trial"
	"github.com/offertmvp/offert-api/internal/domain/repository"
)

// Ensure TxRunner implements quote.QuoteTxRunner and trial.ActivationTxRunner.
var _ quote.QuoteTxRunner = (*TxRunner)(nil)
var _ trial.ActivationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQuote inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback (creación atómica de oferta + líneas).
func (r *TxRunner) RunQuote(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	quoteRepo repository.QuoteRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCustomerRepository(tx), NewQuoteRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunActivation inicia una transacción con repos de cuenta y código de trial
// (upsert de cuenta + consumo condicional del código, atómicos).
func (r *TxRunner) RunActivation(ctx context.Context, fn func(
	accountRepo repository.AccountRepository,
	codeRepo repository.TrialCodeRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAccountRepository(tx), NewTrialCodeRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
