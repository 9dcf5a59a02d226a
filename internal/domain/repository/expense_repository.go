package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/odisseia/erp-api/internal/domain/entity"
)

// ExpenseRepository define o porto de persistência para Expense (DIP).
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Expense, error)
	// SumCurrentMonth soma as despesas pagas no mês corrente.
	SumCurrentMonth(ctx context.Context) (decimal.Decimal, error)
}
