package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/odisseia/erp-api/internal/domain"
	"github.com/odisseia/erp-api/internal/domain/entity"
	"github.com/odisseia/erp-api/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo implementa RevenueRepository sobre PostgreSQL (usável com pool ou tx).
type RevenueRepo struct {
	q Querier
}

// NewRevenueRepository constrói o adaptador de receitas. Passar pool ou tx (Querier).
func NewRevenueRepository(q Querier) *RevenueRepo {
	return &RevenueRepo{q: q}
}

const revenueColumns = `id, descricao, valor, categoria, data_recebimento, contrato_id, COALESCE(observacoes, ''), data_criacao, data_atualizacao`

// Create persiste uma nova receita.
func (r *RevenueRepo) Create(ctx context.Context, revenue *entity.Revenue) error {
	query := `
		INSERT INTO receitas (id, descricao, valor, categoria, data_recebimento, contrato_id, observacoes, data_criacao, data_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		revenue.ID, revenue.Description, revenue.Value, revenue.Category,
		revenue.ReceivedAt, revenue.ContractID, nullIfEmpty(revenue.Notes),
		revenue.CreatedAt, revenue.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert revenue: %w", err)
	}
	return nil
}

// GetByID obtém uma receita por ID. Devolve nil, nil se não existir.
func (r *RevenueRepo) GetByID(ctx context.Context, id string) (*entity.Revenue, error) {
	query := `SELECT ` + revenueColumns + ` FROM receitas WHERE id = $1`
	rev, err := scanRevenue(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get revenue: %w", err)
	}
	return rev, nil
}

// Update atualiza uma receita existente.
func (r *RevenueRepo) Update(ctx context.Context, revenue *entity.Revenue) error {
	query := `
		UPDATE receitas SET
			descricao = $2, valor = $3, categoria = $4, data_recebimento = $5,
			contrato_id = $6, observacoes = $7, data_atualizacao = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		revenue.ID, revenue.Description, revenue.Value, revenue.Category,
		revenue.ReceivedAt, revenue.ContractID, nullIfEmpty(revenue.Notes),
		revenue.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update revenue: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma receita por ID.
func (r *RevenueRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM receitas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete revenue: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista as receitas por data de recebimento, mais recentes primeiro.
func (r *RevenueRepo) List(ctx context.Context) ([]*entity.Revenue, error) {
	query := `SELECT ` + revenueColumns + ` FROM receitas ORDER BY data_recebimento DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list revenues: %w", err)
	}
	defer rows.Close()
	var list []*entity.Revenue
	for rows.Next() {
		rev, err := scanRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revenue: %w", err)
		}
		list = append(list, rev)
	}
	return list, rows.Err()
}

// SumCurrentMonth soma as receitas recebidas no mês corrente.
func (r *RevenueRepo) SumCurrentMonth(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(valor), 0)
		FROM receitas
		WHERE EXTRACT(MONTH FROM data_recebimento) = EXTRACT(MONTH FROM CURRENT_DATE)
		  AND EXTRACT(YEAR FROM data_recebimento) = EXTRACT(YEAR FROM CURRENT_DATE)`).
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum revenues: %w", err)
	}
	return total, nil
}

func scanRevenue(row rowScanner) (*entity.Revenue, error) {
	var rev entity.Revenue
	err := row.Scan(&rev.ID, &rev.Description, &rev.Value, &rev.Category,
		&rev.ReceivedAt, &rev.ContractID, &rev.Notes, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}
