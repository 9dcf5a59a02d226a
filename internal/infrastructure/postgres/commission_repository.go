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

var _ repository.CommissionRepository = (*CommissionRepo)(nil)

// CommissionRepo implementa CommissionRepository sobre PostgreSQL (usável com pool ou tx).
type CommissionRepo struct {
	q Querier
}

// NewCommissionRepository constrói o adaptador de comissões. Passar pool ou tx (Querier).
func NewCommissionRepository(q Querier) *CommissionRepo {
	return &CommissionRepo{q: q}
}

const commissionColumns = `id, contrato_id, corretor_nome, percentual, valor, data_vencimento, status, data_pagamento, COALESCE(observacoes, ''), data_criacao, data_atualizacao`

// Create persiste uma nova comissão.
func (r *CommissionRepo) Create(ctx context.Context, commission *entity.Commission) error {
	query := `
		INSERT INTO comissoes (id, contrato_id, corretor_nome, percentual, valor, data_vencimento, status, data_pagamento, observacoes, data_criacao, data_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		commission.ID, commission.ContractID, commission.BrokerName,
		commission.Percentage, commission.Value, commission.DueDate,
		commission.Status, commission.PaidAt, nullIfEmpty(commission.Notes),
		commission.CreatedAt, commission.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert commission: %w", err)
	}
	return nil
}

// GetByID obtém uma comissão por ID. Devolve nil, nil se não existir.
func (r *CommissionRepo) GetByID(ctx context.Context, id string) (*entity.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM comissoes WHERE id = $1`
	c, err := scanCommission(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commission: %w", err)
	}
	return c, nil
}

// Update atualiza uma comissão existente.
func (r *CommissionRepo) Update(ctx context.Context, commission *entity.Commission) error {
	query := `
		UPDATE comissoes SET
			contrato_id = $2, corretor_nome = $3, percentual = $4, valor = $5,
			data_vencimento = $6, status = $7, observacoes = $8, data_atualizacao = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		commission.ID, commission.ContractID, commission.BrokerName,
		commission.Percentage, commission.Value, commission.DueDate,
		commission.Status, nullIfEmpty(commission.Notes), commission.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update commission: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma comissão por ID.
func (r *CommissionRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM comissoes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete commission: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista as comissões, mais recentes primeiro.
func (r *CommissionRepo) List(ctx context.Context) ([]*entity.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM comissoes ORDER BY data_criacao DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Commission
	for rows.Next() {
		c, err := scanCommission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// SumPending soma as comissões pendentes.
func (r *CommissionRepo) SumPending(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(valor), 0)
		FROM comissoes
		WHERE status = $1`, entity.CommissionStatusPending).
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum pending commissions: %w", err)
	}
	return total, nil
}

// MarkAsPaid muda o status para "pago" e registra a data de pagamento.
// Devolve nil, nil se a comissão não existir.
func (r *CommissionRepo) MarkAsPaid(ctx context.Context, id string) (*entity.Commission, error) {
	query := `
		UPDATE comissoes SET
			status = $2, data_pagamento = now(), data_atualizacao = now()
		WHERE id = $1
		RETURNING ` + commissionColumns
	c, err := scanCommission(r.q.QueryRow(ctx, query, id, entity.CommissionStatusPaid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("mark commission as paid: %w", err)
	}
	return c, nil
}

func scanCommission(row rowScanner) (*entity.Commission, error) {
	var c entity.Commission
	err := row.Scan(&c.ID, &c.ContractID, &c.BrokerName, &c.Percentage, &c.Value,
		&c.DueDate, &c.Status, &c.PaidAt, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
