package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/odisseia/erp-api/internal/domain/entity"
)

// CommissionRepository define o porto de persistência para Commission (DIP).
type CommissionRepository interface {
	Create(ctx context.Context, commission *entity.Commission) error
	GetByID(ctx context.Context, id string) (*entity.Commission, error)
	Update(ctx context.Context, commission *entity.Commission) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Commission, error)
	// SumPending soma as comissões com status "pendente".
	SumPending(ctx context.Context) (decimal.Decimal, error)
	// MarkAsPaid muda status para "pago" e registra a data de pagamento.
	// Devolve nil, nil se a comissão não existir.
	MarkAsPaid(ctx context.Context, id string) (*entity.Commission, error)
}
