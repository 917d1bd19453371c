package cliente

import (
	"context"

	"github.com/clientesvc/backend/internal/domain/shared"
)

// ClienteRepository defines the persistence operations the service depends on.
// Implementations return shared.ErrNotFound when a lookup yields no row and a
// DUPLICATE_CPF domain error when a save violates cpf uniqueness.
type ClienteRepository interface {
	FindByID(ctx context.Context, id int64) (*Cliente, error)
	FindByCPF(ctx context.Context, cpf string) (*Cliente, error)
	ExistsByCPF(ctx context.Context, cpf string) (bool, error)

	// FindByNome matches nome by case-insensitive substring
	FindByNome(ctx context.Context, nome string) ([]Cliente, error)
	// FindByScoreBetween returns clientes with score_credito in [min, max]
	FindByScoreBetween(ctx context.Context, min, max int) ([]Cliente, error)
	FindByAposentado(ctx context.Context, aposentado bool) ([]Cliente, error)
	// FindByProfissao matches profissao by case-insensitive substring
	FindByProfissao(ctx context.Context, profissao string) ([]Cliente, error)

	FindAll(ctx context.Context, filter shared.Filter) ([]Cliente, error)
	Count(ctx context.Context) (int64, error)

	Save(ctx context.Context, c *Cliente) error
	Delete(ctx context.Context, id int64) error
}
