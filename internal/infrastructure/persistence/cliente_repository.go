package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/clientesvc/backend/internal/domain/cliente"
	"github.com/clientesvc/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormClienteRepository implements ClienteRepository using GORM
type GormClienteRepository struct {
	db *gorm.DB
}

// NewGormClienteRepository creates a new GormClienteRepository
func NewGormClienteRepository(db *gorm.DB) *GormClienteRepository {
	return &GormClienteRepository{db: db}
}

// FindByID finds a cliente by its ID
func (r *GormClienteRepository) FindByID(ctx context.Context, id int64) (*cliente.Cliente, error) {
	var c cliente.Cliente
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByCPF finds a cliente by its CPF
func (r *GormClienteRepository) FindByCPF(ctx context.Context, cpf string) (*cliente.Cliente, error) {
	var c cliente.Cliente
	if err := r.db.WithContext(ctx).First(&c, "cpf = ?", cpf).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ExistsByCPF checks if a cliente with the given CPF exists
func (r *GormClienteRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&cliente.Cliente{}).
		Where("cpf = ?", cpf).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByNome finds clientes whose name contains the given fragment,
// case-insensitively
func (r *GormClienteRepository) FindByNome(ctx context.Context, nome string) ([]cliente.Cliente, error) {
	var clientes []cliente.Cliente
	if err := r.db.WithContext(ctx).
		Where("nome ILIKE ?", "%"+nome+"%").
		Order("id ASC").
		Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

// FindByScoreBetween finds clientes with credit score in the inclusive range
func (r *GormClienteRepository) FindByScoreBetween(ctx context.Context, min, max int) ([]cliente.Cliente, error) {
	var clientes []cliente.Cliente
	if err := r.db.WithContext(ctx).
		Where("score_credito BETWEEN ? AND ?", min, max).
		Order("id ASC").
		Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

// FindByAposentado finds clientes by retirement status
func (r *GormClienteRepository) FindByAposentado(ctx context.Context, aposentado bool) ([]cliente.Cliente, error) {
	var clientes []cliente.Cliente
	if err := r.db.WithContext(ctx).
		Where("aposentado = ?", aposentado).
		Order("id ASC").
		Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

// FindByProfissao finds clientes whose profession contains the given
// fragment, case-insensitively
func (r *GormClienteRepository) FindByProfissao(ctx context.Context, profissao string) ([]cliente.Cliente, error) {
	var clientes []cliente.Cliente
	if err := r.db.WithContext(ctx).
		Where("profissao ILIKE ?", "%"+profissao+"%").
		Order("id ASC").
		Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

// FindAll finds a page of clientes ordered by ID
func (r *GormClienteRepository) FindAll(ctx context.Context, filter shared.Filter) ([]cliente.Cliente, error) {
	var clientes []cliente.Cliente
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(filter.Offset()).
		Limit(filter.Size).
		Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

// Count counts all clientes
func (r *GormClienteRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&cliente.Cliente{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a cliente. A unique constraint violation on the
// CPF column is surfaced as a duplicate CPF domain error.
func (r *GormClienteRepository) Save(ctx context.Context, c *cliente.Cliente) error {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.NewDomainError(shared.CodeDuplicateCPF,
				fmt.Sprintf("Já existe um cliente cadastrado com o CPF: %s", c.CPF))
		}
		return err
	}
	return nil
}

// Delete deletes a cliente by ID
func (r *GormClienteRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&cliente.Cliente{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormClienteRepository implements ClienteRepository
var _ cliente.ClienteRepository = (*GormClienteRepository)(nil)
