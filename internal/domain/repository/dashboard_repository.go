package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetrics resume as vendas concluídas de um período.
type SalesMetrics struct {
	Count int64
	Total decimal.Decimal
}

// DashboardRepository consultas read-only para o painel financeiro.
// Não faz parte do caminho transacional: só leituras agregadas.
type DashboardRepository interface {
	CountActiveContracts(ctx context.Context) (int64, error)
	SumRevenues(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	SumExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	SumPendingCommissions(ctx context.Context) (decimal.Decimal, error)
	// GetSalesMetrics conta e soma as vendas "completed" no período.
	GetSalesMetrics(ctx context.Context, start, end time.Time) (*SalesMetrics, error)
}
