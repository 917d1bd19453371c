package cliente

import (
	"github.com/shopspring/decimal"
)

// Cliente is the customer aggregate persisted in the clientes table.
// The id is assigned by storage on first save; cpf is unique across all rows.
type Cliente struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CPF            string          `gorm:"column:cpf;type:varchar(11);uniqueIndex:idx_clientes_cpf;not null" json:"cpf"`
	Nome           string          `gorm:"type:varchar(100);not null" json:"nome"`
	DataNascimento Date            `gorm:"type:date;not null" json:"dataNascimento"`
	RendaMensal    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"rendaMensal"`
	ScoreCredito   int             `gorm:"not null" json:"scoreCredito"`
	Aposentado     bool            `gorm:"not null" json:"aposentado"`
	Profissao      string          `gorm:"type:varchar(50);not null" json:"profissao"`
}

// TableName returns the database table name
func (Cliente) TableName() string {
	return "clientes"
}
