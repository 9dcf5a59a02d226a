package repository

import "context"

// StockLedger é o único porto autorizado a mutar o estoque de produtos.
// Todas as chamadas concorrentes serializam na linha do produto: a checagem de
// disponibilidade e o decremento são um único passo atômico, nunca um
// read-then-write em dois passos.
type StockLedger interface {
	// Reserve decrementa o estoque em qty se o produto existir, estiver ativo
	// e tiver estoque suficiente. Tudo-ou-nada para a linha: em falha retorna
	// domain.ErrProductNotFound, domain.ErrProductInactive ou
	// *domain.InsufficientStockError (com o disponível no momento) sem aplicar
	// nada.
	Reserve(ctx context.Context, productID string, qty int64) error

	// Release incrementa o estoque em qty (devolução de unidades reservadas).
	// Única precondição: o produto existir — um produto desativado ainda
	// recebe estoque de volta. Usado apenas pelo cancelamento de venda.
	Release(ctx context.Context, productID string, qty int64) error
}
