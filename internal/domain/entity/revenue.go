package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue representa uma receita (entrada financeira), opcionalmente ligada a
// um contrato.
type Revenue struct {
	ID          string
	Description string
	Value       decimal.Decimal
	Category    string
	ReceivedAt  time.Time
	ContractID  *string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
