package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRequest entrada para criar/atualizar uma receita.
type RevenueRequest struct {
	Description string          `json:"descricao"`
	Value       decimal.Decimal `json:"valor"`
	Category    string          `json:"categoria"`
	ReceivedAt  time.Time       `json:"data_recebimento"`
	ContractID  *string         `json:"contrato_id"`
	Notes       string          `json:"observacoes"`
}

// RevenueResponse saída de uma receita.
type RevenueResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"descricao"`
	Value       decimal.Decimal `json:"valor"`
	Category    string          `json:"categoria"`
	ReceivedAt  time.Time       `json:"data_recebimento"`
	ContractID  *string         `json:"contrato_id"`
	Notes       string          `json:"observacoes"`
	CreatedAt   time.Time       `json:"data_criacao"`
	UpdatedAt   time.Time       `json:"data_atualizacao"`
}

// ExpenseRequest entrada para criar/atualizar uma despesa.
type ExpenseRequest struct {
	Description string          `json:"descricao"`
	Value       decimal.Decimal `json:"valor"`
	Category    string          `json:"categoria"`
	PaidAt      time.Time       `json:"data_pagamento"`
	ContractID  *string         `json:"contrato_id"`
	Notes       string          `json:"observacoes"`
}

// ExpenseResponse saída de uma despesa.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"descricao"`
	Value       decimal.Decimal `json:"valor"`
	Category    string          `json:"categoria"`
	PaidAt      time.Time       `json:"data_pagamento"`
	ContractID  *string         `json:"contrato_id"`
	Notes       string          `json:"observacoes"`
	CreatedAt   time.Time       `json:"data_criacao"`
	UpdatedAt   time.Time       `json:"data_atualizacao"`
}

// CommissionRequest entrada para criar/atualizar uma comissão.
type CommissionRequest struct {
	ContractID string          `json:"contrato_id"`
	BrokerName string          `json:"corretor_nome"`
	Percentage decimal.Decimal `json:"percentual"`
	Value      decimal.Decimal `json:"valor"`
	DueDate    *time.Time      `json:"data_vencimento"`
	Status     string          `json:"status"`
	Notes      string          `json:"observacoes"`
}

// CommissionResponse saída de uma comissão.
type CommissionResponse struct {
	ID         string          `json:"id"`
	ContractID string          `json:"contrato_id"`
	BrokerName string          `json:"corretor_nome"`
	Percentage decimal.Decimal `json:"percentual"`
	Value      decimal.Decimal `json:"valor"`
	DueDate    *time.Time      `json:"data_vencimento"`
	Status     string          `json:"status"`
	PaidAt     *time.Time      `json:"data_pagamento"`
	Notes      string          `json:"observacoes"`
	CreatedAt  time.Time       `json:"data_criacao"`
	UpdatedAt  time.Time       `json:"data_atualizacao"`
}

// SumResponse total agregado (stats de receitas/despesas/comissões).
type SumResponse struct {
	Success bool            `json:"success"`
	Total   decimal.Decimal `json:"total"`
}
