package repository

import (
	"context"

	"github.com/odisseia/erp-api/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product (DIP).
// Stock não é alterado por aqui fora da criação: toda mutação de estoque passa
// pelo StockLedger.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	ListActive(ctx context.Context) ([]*entity.Product, error)
	// Deactivate faz o soft delete (active = false). Produtos nunca são
	// removidos de fato: itens de vendas históricas os referenciam.
	Deactivate(ctx context.Context, id string) error
}
