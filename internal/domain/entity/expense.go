package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa uma despesa (saída financeira).
type Expense struct {
	ID          string
	Description string
	Value       decimal.Decimal
	Category    string
	PaidAt      time.Time
	ContractID  *string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
