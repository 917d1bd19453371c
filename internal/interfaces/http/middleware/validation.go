package middleware

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/clientesvc/backend/internal/domain/cliente"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// SetupValidator configures gin's validator with the custom rules used by
// the cliente payload. Must be called once before the engine serves requests.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Expose cliente.Date to the validator as its underlying time.Time so
	// required and pastdate can see it
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(cliente.Date); ok {
			return d.Time()
		}
		return nil
	}, cliente.Date{})

	_ = v.RegisterValidation("cpf", validateCPF)
	_ = v.RegisterValidation("pastdate", validatePastDate)
	_ = v.RegisterValidation("decimalgte", validateDecimalGTE)
	_ = v.RegisterValidation("decimaldigits", validateDecimalDigits)
}

// validateCPF checks the CPF check digits
func validateCPF(fl validator.FieldLevel) bool {
	return cliente.ValidCPF(fl.Field().String())
}

// validatePastDate requires the date to be strictly before today
func validatePastDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return t.Before(today)
}

// validateDecimalGTE requires the value to be greater than or equal to the
// param, e.g. decimalgte=0. Zero itself passes.
func validateDecimalGTE(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	min, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return d.GreaterThanOrEqual(min)
}

// validateDecimalDigits bounds the integer and fractional digit counts.
// The param is "<int>.<frac>", e.g. decimaldigits=8.2.
func validateDecimalDigits(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	parts := strings.SplitN(fl.Param(), ".", 2)
	maxInt, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	maxFrac := 0
	if len(parts) == 2 {
		if maxFrac, err = strconv.Atoi(parts[1]); err != nil {
			return false
		}
	}

	digits := strings.SplitN(d.Abs().String(), ".", 2)
	if len(digits[0]) > maxInt {
		return false
	}
	if len(digits) == 2 && len(digits[1]) > maxFrac {
		return false
	}
	return true
}

// FormatValidationErrors flattens validation errors into one
// "<field>: <message>" entry per violation, in declaration order
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	details := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, e.Field()+": "+validationMessage(e))
	}
	return details
}

// validationMessage returns the message for a single field violation
func validationMessage(e validator.FieldError) string {
	switch e.Field() {
	case "cpf":
		if e.Tag() == "required" {
			return "CPF é obrigatório"
		}
		return "CPF deve ter formato válido"
	case "nome":
		if e.Tag() == "required" {
			return "Nome é obrigatório"
		}
		return "Nome deve ter entre 2 e 100 caracteres"
	case "dataNascimento":
		if e.Tag() == "required" {
			return "Data de nascimento é obrigatória"
		}
		return "Data de nascimento deve ser no passado"
	case "rendaMensal":
		switch e.Tag() {
		case "required":
			return "Renda mensal é obrigatória"
		case "decimalgte":
			return "Renda mensal deve ser positiva ou zero"
		default:
			return "Renda mensal deve ter no máximo 8 dígitos inteiros e 2 decimais"
		}
	case "scoreCredito":
		switch e.Tag() {
		case "required":
			return "Score de crédito é obrigatório"
		case "gte":
			return "Score de crédito deve ser no mínimo 0"
		default:
			return "Score de crédito deve ser no máximo 1000"
		}
	case "aposentado":
		return "Campo aposentado é obrigatório"
	case "profissao":
		if e.Tag() == "required" {
			return "Profissão é obrigatória"
		}
		return "Profissão deve ter entre 2 e 50 caracteres"
	default:
		return "Valor inválido"
	}
}
