package fieldsales

import (
	"context"

	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción PostgreSQL con un
// OrderRepository atado a la tx. Lo implementa postgres.TxRunner.
// La reserva del consecutivo y el insert del pedido deben ser atómicos.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}
