package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractRequest entrada para criar/atualizar um contrato.
type ContractRequest struct {
	Number     string          `json:"numero_contrato"`
	ClientName string          `json:"cliente_nome"`
	ClientCPF  string          `json:"cliente_cpf"`
	Value      decimal.Decimal `json:"valor"`
	StartDate  time.Time       `json:"data_inicio"`
	EndDate    *time.Time      `json:"data_fim"`
	Status     string          `json:"status"`
	Notes      string          `json:"observacoes"`
}

// ContractResponse saída de um contrato.
type ContractResponse struct {
	ID         string          `json:"id"`
	Number     string          `json:"numero_contrato"`
	ClientName string          `json:"cliente_nome"`
	ClientCPF  string          `json:"cliente_cpf"`
	Value      decimal.Decimal `json:"valor"`
	StartDate  time.Time       `json:"data_inicio"`
	EndDate    *time.Time      `json:"data_fim"`
	Status     string          `json:"status"`
	Notes      string          `json:"observacoes"`
	CreatedAt  time.Time       `json:"data_criacao"`
	UpdatedAt  time.Time       `json:"data_atualizacao"`
}

// ContractListResponse lista de contratos com contagem.
type ContractListResponse struct {
	Success bool               `json:"success"`
	Count   int                `json:"count"`
	Data    []ContractResponse `json:"data"`
}
