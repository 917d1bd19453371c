package handler

import (
	"errors"
	"net/http"
	"strconv"

	appcliente "github.com/clientesvc/backend/internal/application/cliente"
	"github.com/clientesvc/backend/internal/domain/cliente"
	"github.com/clientesvc/backend/internal/domain/shared"
	"github.com/clientesvc/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// healthMessage is the fixed body of GET /api/clientes/health
const healthMessage = "API Cliente está funcionando!"

// clienteRequest is the JSON payload for create and update operations.
// Pointer fields distinguish absent values from zero values so that 0 and
// false are accepted.
type clienteRequest struct {
	CPF            string           `json:"cpf" binding:"required,cpf"`
	Nome           string           `json:"nome" binding:"required,min=2,max=100"`
	DataNascimento cliente.Date     `json:"dataNascimento" binding:"required,pastdate"`
	RendaMensal    *decimal.Decimal `json:"rendaMensal" binding:"required,decimalgte=0,decimaldigits=8.2"`
	ScoreCredito   *int             `json:"scoreCredito" binding:"required,gte=0,lte=1000"`
	Aposentado     *bool            `json:"aposentado" binding:"required"`
	Profissao      string           `json:"profissao" binding:"required,min=2,max=50"`
}

// toApplicationRequest converts the validated payload. All pointers are
// guaranteed non-nil once binding succeeds.
func (r clienteRequest) toApplicationRequest() appcliente.ClienteRequest {
	return appcliente.ClienteRequest{
		CPF:            r.CPF,
		Nome:           r.Nome,
		DataNascimento: r.DataNascimento,
		RendaMensal:    *r.RendaMensal,
		ScoreCredito:   *r.ScoreCredito,
		Aposentado:     *r.Aposentado,
		Profissao:      r.Profissao,
	}
}

// listQuery holds the pagination query parameters of the listing route
type listQuery struct {
	Page int `form:"page"`
	Size int `form:"size"`
}

// ClienteHandler handles HTTP requests for clientes
type ClienteHandler struct {
	BaseHandler
	service *appcliente.ClienteService
}

// NewClienteHandler creates a new ClienteHandler
func NewClienteHandler(service *appcliente.ClienteService) *ClienteHandler {
	return &ClienteHandler{service: service}
}

// RegisterRoutes registers cliente routes. Read routes require the
// sistemaOrigem header; writes and the health probe do not.
func (h *ClienteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clientes := rg.Group("/clientes")
	origem := middleware.RequireOriginSystem()

	clientes.POST("", h.Cadastrar)
	clientes.PUT("/:id", h.Atualizar)
	clientes.DELETE("/:id", h.Remover)
	clientes.GET("/health", h.Health)

	clientes.GET("", origem, h.Listar)
	clientes.GET("/:id", origem, h.BuscarPorID)
	clientes.GET("/cpf/:cpf", origem, h.BuscarPorCPF)
	clientes.GET("/buscar", origem, h.BuscarPorNome)
	clientes.GET("/score", origem, h.BuscarPorScore)
	clientes.GET("/aposentados", origem, h.BuscarPorAposentado)
	clientes.GET("/profissao/:profissao", origem, h.BuscarPorProfissao)
}

// Cadastrar handles POST /clientes
func (h *ClienteHandler) Cadastrar(c *gin.Context) {
	req, ok := h.bindCliente(c)
	if !ok {
		return
	}

	resp, err := h.service.Cadastrar(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// BuscarPorID handles GET /clientes/:id
func (h *ClienteHandler) BuscarPorID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.service.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// BuscarPorCPF handles GET /clientes/cpf/:cpf
func (h *ClienteHandler) BuscarPorCPF(c *gin.Context) {
	resp, err := h.service.BuscarPorCPF(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Listar handles GET /clientes with zero-based page and size parameters
func (h *ClienteHandler) Listar(c *gin.Context) {
	var query listQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Parâmetros de paginação inválidos")
		return
	}

	filter := shared.Filter{Page: query.Page, Size: query.Size}.Normalize()
	content, total, err := h.service.Listar(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, shared.NewPaginated(content, total, filter.Page, filter.Size))
}

// BuscarPorNome handles GET /clientes/buscar?nome=
func (h *ClienteHandler) BuscarPorNome(c *gin.Context) {
	nome := c.Query("nome")
	if nome == "" {
		h.BadRequest(c, "Parâmetro 'nome' é obrigatório")
		return
	}

	resp, err := h.service.BuscarPorNome(c.Request.Context(), nome)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// BuscarPorScore handles GET /clientes/score?min=&max=
func (h *ClienteHandler) BuscarPorScore(c *gin.Context) {
	min, err := strconv.Atoi(c.DefaultQuery("min", "0"))
	if err != nil {
		h.BadRequest(c, "Parâmetro 'min' inválido")
		return
	}
	max, err := strconv.Atoi(c.DefaultQuery("max", "1000"))
	if err != nil {
		h.BadRequest(c, "Parâmetro 'max' inválido")
		return
	}

	resp, err := h.service.BuscarPorScore(c.Request.Context(), min, max)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// BuscarPorAposentado handles GET /clientes/aposentados?aposentado=
func (h *ClienteHandler) BuscarPorAposentado(c *gin.Context) {
	aposentado, err := strconv.ParseBool(c.DefaultQuery("aposentado", "true"))
	if err != nil {
		h.BadRequest(c, "Parâmetro 'aposentado' inválido")
		return
	}

	resp, err := h.service.BuscarPorAposentado(c.Request.Context(), aposentado)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// BuscarPorProfissao handles GET /clientes/profissao/:profissao
func (h *ClienteHandler) BuscarPorProfissao(c *gin.Context) {
	resp, err := h.service.BuscarPorProfissao(c.Request.Context(), c.Param("profissao"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Atualizar handles PUT /clientes/:id
func (h *ClienteHandler) Atualizar(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	req, ok := h.bindCliente(c)
	if !ok {
		return
	}

	resp, err := h.service.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Remover handles DELETE /clientes/:id
func (h *ClienteHandler) Remover(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Remover(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Health handles GET /clientes/health
func (h *ClienteHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, healthMessage)
}

// bindCliente binds and validates the request body, writing the error
// response itself when the payload is rejected
func (h *ClienteHandler) bindCliente(c *gin.Context) (appcliente.ClienteRequest, bool) {
	var req clienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.ValidationError(c, middleware.FormatValidationErrors(err))
		} else {
			h.BadRequest(c, "Corpo da requisição inválido")
		}
		return appcliente.ClienteRequest{}, false
	}
	return req.toApplicationRequest(), true
}

// parseID parses the numeric id path parameter
func (h *ClienteHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "ID inválido")
		return 0, false
	}
	return id, true
}
