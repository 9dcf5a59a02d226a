package repository

import (
	"context"

	"github.com/odisseia/erp-api/internal/domain/entity"
)

// SaleRepository define o porto de persistência para Sale e seus itens.
type SaleRepository interface {
	// Create persiste o cabeçalho da venda.
	Create(ctx context.Context, sale *entity.Sale) error
	// CreateItem persiste um item da venda.
	CreateItem(ctx context.Context, item *entity.SaleItem) error
	// GetByID devolve a venda com itens na ordem de inserção, ou nil se não existir.
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	// List devolve as vendas com itens, mais recentes primeiro.
	List(ctx context.Context) ([]*entity.Sale, error)
	// CancelCompleted flipa status de completed para cancelled em um único
	// passo condicional. Devolve false se nenhuma linha mudou (venda
	// inexistente ou já cancelada) — o chamador classifica.
	CancelCompleted(ctx context.Context, id string) (bool, error)
}
