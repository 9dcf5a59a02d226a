// Package analytics contém os casos de uso do painel financeiro.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/odisseia/erp-api/internal/application/dto"
	"github.com/odisseia/erp-api/internal/domain/repository"
)

// DashboardUseCase monta o resumo financeiro do mês corrente.
//
// Fonte de dados: DashboardRepository (consultas read-only). Não toca nas
// tabelas diretamente; delega tudo ao repositório.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetSummary constrói o DashboardSummaryDTO do mês corrente.
//
// Cinco consultas em paralelo:
//  1. CountActiveContracts       → ContratosAtivos
//  2. SumRevenues(mês)           → ReceitasMes
//  3. SumExpenses(mês)           → DespesasMes
//  4. SumPendingCommissions      → ComissoesPendentes
//  5. GetSalesMetrics(mês)       → VendasMes + TotalVendasMes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Mês calendário inteiro, a mesma janela dos SumCurrentMonth dos
	// repositórios: dia 1 às 00:00 até o último instante do mês.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	type countResult struct {
		n   int64
		err error
	}
	type sumResult struct {
		total decimal.Decimal
		err   error
	}
	type salesResult struct {
		metrics *repository.SalesMetrics
		err     error
	}

	contractsCh := make(chan countResult, 1)
	revenuesCh := make(chan sumResult, 1)
	expensesCh := make(chan sumResult, 1)
	commissionsCh := make(chan sumResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		n, err := uc.dashboardRepo.CountActiveContracts(ctx)
		contractsCh <- countResult{n, err}
	}()
	go func() {
		total, err := uc.dashboardRepo.SumRevenues(ctx, monthStart, monthEnd)
		revenuesCh <- sumResult{total, err}
	}()
	go func() {
		total, err := uc.dashboardRepo.SumExpenses(ctx, monthStart, monthEnd)
		expensesCh <- sumResult{total, err}
	}()
	go func() {
		total, err := uc.dashboardRepo.SumPendingCommissions(ctx)
		commissionsCh <- sumResult{total, err}
	}()
	go func() {
		metrics, err := uc.dashboardRepo.GetSalesMetrics(ctx, monthStart, monthEnd)
		salesCh <- salesResult{metrics, err}
	}()

	contracts := <-contractsCh
	revenues := <-revenuesCh
	expenses := <-expensesCh
	commissions := <-commissionsCh
	sales := <-salesCh

	if contracts.err != nil {
		return nil, fmt.Errorf("dashboard: contratos ativos: %w", contracts.err)
	}
	if revenues.err != nil {
		return nil, fmt.Errorf("dashboard: receitas do mês: %w", revenues.err)
	}
	if expenses.err != nil {
		return nil, fmt.Errorf("dashboard: despesas do mês: %w", expenses.err)
	}
	if commissions.err != nil {
		return nil, fmt.Errorf("dashboard: comissões pendentes: %w", commissions.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de vendas: %w", sales.err)
	}

	return &dto.DashboardSummaryDTO{
		ActiveContracts:    contracts.n,
		MonthRevenues:      revenues.total.Round(2),
		MonthExpenses:      expenses.total.Round(2),
		NetResult:          revenues.total.Sub(expenses.total).Round(2),
		PendingCommissions: commissions.total.Round(2),
		MonthSalesCount:    sales.metrics.Count,
		MonthSalesTotal:    sales.metrics.Total.Round(2),
	}, nil
}
