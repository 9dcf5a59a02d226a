package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de comissão.
const (
	CommissionStatusPending   = "pendente"
	CommissionStatusPaid      = "pago"
	CommissionStatusCancelled = "cancelado"
)

// Commission representa a comissão de um corretor sobre um contrato.
type Commission struct {
	ID         string
	ContractID string
	BrokerName string
	Percentage decimal.Decimal // percentual sobre o valor do contrato
	Value      decimal.Decimal
	DueDate    *time.Time
	Status     string // pendente, pago, cancelado
	PaidAt     *time.Time
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
