package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de contrato.
const (
	ContractStatusActive    = "ativo"
	ContractStatusClosed    = "encerrado"
	ContractStatusCancelled = "cancelado"
)

// Contract representa um contrato de corretagem.
type Contract struct {
	ID         string
	Number     string // número do contrato, visível ao cliente
	ClientName string
	ClientCPF  string
	Value      decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
	Status     string // ativo, encerrado, cancelado
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
