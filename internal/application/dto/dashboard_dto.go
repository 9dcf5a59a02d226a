package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumo financeiro do mês corrente.
type DashboardSummaryDTO struct {
	ActiveContracts    int64           `json:"contratos_ativos"`
	MonthRevenues      decimal.Decimal `json:"receitas_mes"`
	MonthExpenses      decimal.Decimal `json:"despesas_mes"`
	NetResult          decimal.Decimal `json:"resultado_mes"`
	PendingCommissions decimal.Decimal `json:"comissoes_pendentes"`
	MonthSalesCount    int64           `json:"vendas_mes"`
	MonthSalesTotal    decimal.Decimal `json:"total_vendas_mes"`
}
