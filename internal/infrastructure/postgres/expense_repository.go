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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo implementa ExpenseRepository sobre PostgreSQL (usável com pool ou tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository constrói o adaptador de despesas. Passar pool ou tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

const expenseColumns = `id, descricao, valor, categoria, data_pagamento, contrato_id, COALESCE(observacoes, ''), data_criacao, data_atualizacao`

// Create persiste uma nova despesa.
func (r *ExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	query := `
		INSERT INTO despesas (id, descricao, valor, categoria, data_pagamento, contrato_id, observacoes, data_criacao, data_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		expense.ID, expense.Description, expense.Value, expense.Category,
		expense.PaidAt, expense.ContractID, nullIfEmpty(expense.Notes),
		expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID obtém uma despesa por ID. Devolve nil, nil se não existir.
func (r *ExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM despesas WHERE id = $1`
	exp, err := scanExpense(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return exp, nil
}

// Update atualiza uma despesa existente.
func (r *ExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	query := `
		UPDATE despesas SET
			descricao = $2, valor = $3, categoria = $4, data_pagamento = $5,
			contrato_id = $6, observacoes = $7, data_atualizacao = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		expense.ID, expense.Description, expense.Value, expense.Category,
		expense.PaidAt, expense.ContractID, nullIfEmpty(expense.Notes),
		expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove uma despesa por ID.
func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM despesas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista as despesas por data de pagamento, mais recentes primeiro.
func (r *ExpenseRepo) List(ctx context.Context) ([]*entity.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM despesas ORDER BY data_pagamento DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Expense
	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, exp)
	}
	return list, rows.Err()
}

// SumCurrentMonth soma as despesas pagas no mês corrente.
func (r *ExpenseRepo) SumCurrentMonth(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(valor), 0)
		FROM despesas
		WHERE EXTRACT(MONTH FROM data_pagamento) = EXTRACT(MONTH FROM CURRENT_DATE)
		  AND EXTRACT(YEAR FROM data_pagamento) = EXTRACT(YEAR FROM CURRENT_DATE)`).
		Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum expenses: %w", err)
	}
	return total, nil
}

func scanExpense(row rowScanner) (*entity.Expense, error) {
	var exp entity.Expense
	err := row.Scan(&exp.ID, &exp.Description, &exp.Value, &exp.Category,
		&exp.PaidAt, &exp.ContractID, &exp.Notes, &exp.CreatedAt, &exp.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &exp, nil
}
