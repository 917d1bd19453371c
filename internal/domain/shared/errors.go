package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes shared across the domain
const (
	CodeNotFound         = "NOT_FOUND"
	CodeDuplicateCPF     = "DUPLICATE_CPF"
	CodeMissingHeader    = "MISSING_HEADER"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInternal         = "INTERNAL_ERROR"
)

// Common domain errors
var (
	ErrNotFound      = NewDomainError(CodeNotFound, "Recurso não encontrado")
	ErrDuplicateCPF  = NewDomainError(CodeDuplicateCPF, "CPF já cadastrado")
	ErrMissingHeader = NewDomainError(CodeMissingHeader, "Header 'sistemaOrigem' é obrigatório para operações de consulta")
	ErrInternal      = NewDomainError(CodeInternal, "Erro interno do servidor")
)
