package repository

import (
	"context"

	"github.com/odisseia/erp-api/internal/domain/entity"
)

// ContractRepository define o porto de persistência para Contract (DIP).
type ContractRepository interface {
	Create(ctx context.Context, contract *entity.Contract) error
	GetByID(ctx context.Context, id string) (*entity.Contract, error)
	Update(ctx context.Context, contract *entity.Contract) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Contract, error)
	// CountActive conta os contratos com status "ativo".
	CountActive(ctx context.Context) (int64, error)
}
