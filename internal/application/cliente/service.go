package cliente

import (
	"context"
	"errors"
	"fmt"

	"github.com/clientesvc/backend/internal/domain/cliente"
	"github.com/clientesvc/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ClienteService handles cliente business operations
type ClienteService struct {
	repo   cliente.ClienteRepository
	logger *zap.Logger
}

// NewClienteService creates a new ClienteService
func NewClienteService(repo cliente.ClienteRepository, logger *zap.Logger) *ClienteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClienteService{
		repo:   repo,
		logger: logger,
	}
}

// Cadastrar registers a new cliente. Fails with DUPLICATE_CPF when another
// cliente already holds the same cpf.
func (s *ClienteService) Cadastrar(ctx context.Context, req ClienteRequest) (*ClienteResponse, error) {
	s.logger.Info("Cadastrando cliente", zap.String("cpf", req.CPF))

	exists, err := s.repo.ExistsByCPF(ctx, req.CPF)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, duplicateCPF(req.CPF)
	}

	c := req.toEntity()
	if err := s.repo.Save(ctx, c); err != nil {
		// The unique index closes the check-then-act window; a losing
		// concurrent insert surfaces here as the same duplicate error.
		if isDuplicateCPF(err) {
			return nil, duplicateCPF(req.CPF)
		}
		return nil, err
	}

	s.logger.Info("Cliente cadastrado", zap.Int64("id", c.ID), zap.String("cpf", c.CPF))
	resp := ToClienteResponse(c)
	return &resp, nil
}

// BuscarPorCPF retrieves a cliente by cpf
func (s *ClienteService) BuscarPorCPF(ctx context.Context, cpf string) (*ClienteResponse, error) {
	c, err := s.repo.FindByCPF(ctx, cpf)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError(shared.CodeNotFound,
				fmt.Sprintf("Cliente não encontrado com CPF: %s", cpf))
		}
		return nil, err
	}
	resp := ToClienteResponse(c)
	return &resp, nil
}

// BuscarPorID retrieves a cliente by id
func (s *ClienteService) BuscarPorID(ctx context.Context, id int64) (*ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, notFoundByID(id)
		}
		return nil, err
	}
	resp := ToClienteResponse(c)
	return &resp, nil
}

// Listar returns a page of clientes plus the total count. The page index is
// zero-based; size defaults to 20 when unset and is deliberately uncapped.
func (s *ClienteService) Listar(ctx context.Context, filter shared.Filter) ([]ClienteResponse, int64, error) {
	filter = filter.Normalize()

	clientes, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return ToClienteResponses(clientes), total, nil
}

// BuscarPorNome returns clientes whose nome contains the given substring,
// case-insensitively
func (s *ClienteService) BuscarPorNome(ctx context.Context, nome string) ([]ClienteResponse, error) {
	clientes, err := s.repo.FindByNome(ctx, nome)
	if err != nil {
		return nil, err
	}
	return ToClienteResponses(clientes), nil
}

// BuscarPorScore returns clientes with score_credito within [min, max]
func (s *ClienteService) BuscarPorScore(ctx context.Context, min, max int) ([]ClienteResponse, error) {
	clientes, err := s.repo.FindByScoreBetween(ctx, min, max)
	if err != nil {
		return nil, err
	}
	return ToClienteResponses(clientes), nil
}

// BuscarPorAposentado returns clientes filtered by retirement flag
func (s *ClienteService) BuscarPorAposentado(ctx context.Context, aposentado bool) ([]ClienteResponse, error) {
	clientes, err := s.repo.FindByAposentado(ctx, aposentado)
	if err != nil {
		return nil, err
	}
	return ToClienteResponses(clientes), nil
}

// BuscarPorProfissao returns clientes whose profissao contains the given
// substring, case-insensitively
func (s *ClienteService) BuscarPorProfissao(ctx context.Context, profissao string) ([]ClienteResponse, error) {
	clientes, err := s.repo.FindByProfissao(ctx, profissao)
	if err != nil {
		return nil, err
	}
	return ToClienteResponses(clientes), nil
}

// Atualizar overwrites all mutable fields of an existing cliente. When the cpf
// changes, the new value must not belong to another cliente.
func (s *ClienteService) Atualizar(ctx context.Context, id int64, req ClienteRequest) (*ClienteResponse, error) {
	s.logger.Info("Atualizando cliente", zap.Int64("id", id))

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, notFoundByID(id)
		}
		return nil, err
	}

	if req.CPF != existing.CPF {
		exists, err := s.repo.ExistsByCPF(ctx, req.CPF)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, duplicateCPF(req.CPF)
		}
	}

	req.apply(existing)
	if err := s.repo.Save(ctx, existing); err != nil {
		if isDuplicateCPF(err) {
			return nil, duplicateCPF(req.CPF)
		}
		return nil, err
	}

	s.logger.Info("Cliente atualizado", zap.Int64("id", existing.ID))
	resp := ToClienteResponse(existing)
	return &resp, nil
}

// Remover deletes a cliente by id, failing with NOT_FOUND when absent
func (s *ClienteService) Remover(ctx context.Context, id int64) error {
	s.logger.Info("Removendo cliente", zap.Int64("id", id))

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return notFoundByID(id)
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return notFoundByID(id)
		}
		return err
	}

	s.logger.Info("Cliente removido", zap.Int64("id", id))
	return nil
}

func notFoundByID(id int64) *shared.DomainError {
	return shared.NewDomainError(shared.CodeNotFound,
		fmt.Sprintf("Cliente não encontrado com ID: %d", id))
}

func duplicateCPF(cpf string) *shared.DomainError {
	return shared.NewDomainError(shared.CodeDuplicateCPF,
		fmt.Sprintf("Já existe um cliente cadastrado com o CPF: %s", cpf))
}

func isDuplicateCPF(err error) bool {
	var domainErr *shared.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == shared.CodeDuplicateCPF
}
