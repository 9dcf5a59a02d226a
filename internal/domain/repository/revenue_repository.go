package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/odisseia/erp-api/internal/domain/entity"
)

// RevenueRepository define o porto de persistência para Revenue (DIP).
type RevenueRepository interface {
	Create(ctx context.Context, revenue *entity.Revenue) error
	GetByID(ctx context.Context, id string) (*entity.Revenue, error)
	Update(ctx context.Context, revenue *entity.Revenue) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Revenue, error)
	// SumCurrentMonth soma as receitas recebidas no mês corrente.
	SumCurrentMonth(ctx context.Context) (decimal.Decimal, error)
}
