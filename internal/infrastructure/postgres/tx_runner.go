package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldforce-api/internal/application/fieldsales"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// Ensure TxRunner implements fieldsales.TxRunner.
var _ fieldsales.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrder inicia una transacción, ejecuta fn con un OrderRepository atado a
// la tx y hace Commit o Rollback. La reserva del consecutivo y el insert del
// pedido quedan atómicos.
func (r *TxRunner) RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderRepo := NewOrderRepository(tx)

	if err := fn(orderRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
