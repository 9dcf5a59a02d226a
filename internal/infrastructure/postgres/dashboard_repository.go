package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/odisseia/erp-api/internal/domain/entity"
	"github.com/odisseia/erp-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas read-only para o painel financeiro.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository constrói o adaptador do painel.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountActiveContracts conta os contratos com status "ativo".
func (r *DashboardRepo) CountActiveContracts(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contratos WHERE status = $1`, entity.ContractStatusActive).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("dashboard.CountActiveContracts: %w", err)
	}
	return count, nil
}

// SumRevenues soma as receitas recebidas no período.
func (r *DashboardRepo) SumRevenues(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(valor), 0)
		FROM receitas
		WHERE data_recebimento BETWEEN $1 AND $2`, start, end).
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumRevenues: %w", err)
	}
	return total, nil
}

// SumExpenses soma as despesas pagas no período.
func (r *DashboardRepo) SumExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(valor), 0)
		FROM despesas
		WHERE data_pagamento BETWEEN $1 AND $2`, start, end).
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumExpenses: %w", err)
	}
	return total, nil
}

// SumPendingCommissions soma as comissões pendentes.
func (r *DashboardRepo) SumPendingCommissions(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(valor), 0)
		FROM comissoes
		WHERE status = $1`, entity.CommissionStatusPending).
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("dashboard.SumPendingCommissions: %w", err)
	}
	return total, nil
}

// GetSalesMetrics conta e soma as vendas concluídas no período. Vendas
// canceladas ficam de fora.
func (r *DashboardRepo) GetSalesMetrics(ctx context.Context, start, end time.Time) (*repository.SalesMetrics, error) {
	var m repository.SalesMetrics
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total), 0)
		FROM sales
		WHERE status = $1 AND created_at BETWEEN $2 AND $3`,
		entity.SaleStatusCompleted, start, end).
		Scan(&m.Count, &m.Total)
	if err != nil {
		return nil, fmt.Errorf("dashboard.GetSalesMetrics: %w", err)
	}
	return &m, nil
}
