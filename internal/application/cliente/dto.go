package cliente

import (
	"github.com/clientesvc/backend/internal/domain/cliente"
	"github.com/shopspring/decimal"
)

// ClienteRequest carries the mutable fields for create and update operations.
// Field-level validation happens at the HTTP boundary before this is built.
type ClienteRequest struct {
	CPF            string
	Nome           string
	DataNascimento cliente.Date
	RendaMensal    decimal.Decimal
	ScoreCredito   int
	Aposentado     bool
	Profissao      string
}

// toEntity builds a new entity from the request (id unset, assigned by storage)
func (r ClienteRequest) toEntity() *cliente.Cliente {
	return &cliente.Cliente{
		CPF:            r.CPF,
		Nome:           r.Nome,
		DataNascimento: r.DataNascimento,
		RendaMensal:    r.RendaMensal,
		ScoreCredito:   r.ScoreCredito,
		Aposentado:     r.Aposentado,
		Profissao:      r.Profissao,
	}
}

// apply overwrites all mutable fields of an existing entity
func (r ClienteRequest) apply(c *cliente.Cliente) {
	c.CPF = r.CPF
	c.Nome = r.Nome
	c.DataNascimento = r.DataNascimento
	c.RendaMensal = r.RendaMensal
	c.ScoreCredito = r.ScoreCredito
	c.Aposentado = r.Aposentado
	c.Profissao = r.Profissao
}

// ClienteResponse is the read representation returned by every query
type ClienteResponse struct {
	ID             int64           `json:"id"`
	CPF            string          `json:"cpf"`
	Nome           string          `json:"nome"`
	DataNascimento cliente.Date    `json:"dataNascimento"`
	RendaMensal    decimal.Decimal `json:"rendaMensal"`
	ScoreCredito   int             `json:"scoreCredito"`
	Aposentado     bool            `json:"aposentado"`
	Profissao      string          `json:"profissao"`
}

// ToClienteResponse converts an entity to its response representation
func ToClienteResponse(c *cliente.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:             c.ID,
		CPF:            c.CPF,
		Nome:           c.Nome,
		DataNascimento: c.DataNascimento,
		RendaMensal:    c.RendaMensal,
		ScoreCredito:   c.ScoreCredito,
		Aposentado:     c.Aposentado,
		Profissao:      c.Profissao,
	}
}

// ToClienteResponses converts a slice of entities
func ToClienteResponses(clientes []cliente.Cliente) []ClienteResponse {
	responses := make([]ClienteResponse, len(clientes))
	for i := range clientes {
		responses[i] = ToClienteResponse(&clientes[i])
	}
	return responses
}
