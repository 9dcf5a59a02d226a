package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odisseia/erp-api/internal/application/analytics"
	"github.com/odisseia/erp-api/internal/domain/repository"
)

type fakeDashboardRepo struct {
	activeContracts    int64
	revenues           decimal.Decimal
	expenses           decimal.Decimal
	pendingCommissions decimal.Decimal
	salesMetrics       repository.SalesMetrics

	revenuesErr error

	gotStart, gotEnd time.Time
}

func (f *fakeDashboardRepo) CountActiveContracts(ctx context.Context) (int64, error) {
	return f.activeContracts, nil
}

func (f *fakeDashboardRepo) SumRevenues(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	f.gotStart, f.gotEnd = start, end
	return f.revenues, f.revenuesErr
}

func (f *fakeDashboardRepo) SumExpenses(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return f.expenses, nil
}

func (f *fakeDashboardRepo) SumPendingCommissions(ctx context.Context) (decimal.Decimal, error) {
	return f.pendingCommissions, nil
}

func (f *fakeDashboardRepo) GetSalesMetrics(ctx context.Context, start, end time.Time) (*repository.SalesMetrics, error) {
	m := f.salesMetrics
	return &m, nil
}

func TestGetSummary_AgregaTudo(t *testing.T) {
	repo := &fakeDashboardRepo{
		activeContracts:    7,
		revenues:           decimal.RequireFromString("1500.00"),
		expenses:           decimal.RequireFromString("400.50"),
		pendingCommissions: decimal.RequireFromString("230.00"),
		salesMetrics: repository.SalesMetrics{
			Count: 12,
			Total: decimal.RequireFromString("980.75"),
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), out.ActiveContracts)
	assert.True(t, out.MonthRevenues.Equal(decimal.RequireFromString("1500.00")))
	assert.True(t, out.MonthExpenses.Equal(decimal.RequireFromString("400.50")))
	assert.True(t, out.NetResult.Equal(decimal.RequireFromString("1099.50")),
		"resultado do mês deve ser receitas menos despesas")
	assert.True(t, out.PendingCommissions.Equal(decimal.RequireFromString("230.00")))
	assert.Equal(t, int64(12), out.MonthSalesCount)
	assert.True(t, out.MonthSalesTotal.Equal(decimal.RequireFromString("980.75")))
}

func TestGetSummary_JanelaDoMesCorrente(t *testing.T) {
	repo := &fakeDashboardRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	now := time.Now()
	assert.Equal(t, 1, repo.gotStart.Day(), "a janela deve começar no dia 1")
	assert.Equal(t, now.Month(), repo.gotStart.Month())
	assert.Equal(t, now.Year(), repo.gotStart.Year())

	// O fim da janela é o mês calendário inteiro, igual aos SumCurrentMonth
	// dos repositórios: lançamentos futuros dentro do mês entram no resumo.
	nextMonth := repo.gotStart.AddDate(0, 1, 0)
	assert.True(t, repo.gotEnd.After(nextMonth.Add(-time.Second)), "a janela deve ir até o fim do mês")
	assert.True(t, repo.gotEnd.Before(nextMonth), "a janela não pode vazar para o mês seguinte")
}

func TestGetSummary_PropagaErro(t *testing.T) {
	repo := &fakeDashboardRepo{revenuesErr: errors.New("timeout")}
	uc := analytics.NewDashboardUseCase(repo)

	_, err := uc.GetSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "receitas")
}
