package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo.
// Stock é o contador autoritativo de estoque; só muda via reserva/devolução
// (ledger de estoque), nunca por update direto. Produtos nunca são apagados:
// Active=false os esconde de novas vendas mas preserva os itens históricos.
type Product struct {
	ID          string
	SKU         string // código único, visível ao usuário
	Name        string
	Description string
	Price       decimal.Decimal // preço de venda unitário
	Cost        decimal.Decimal // custo de aquisição
	Stock       int64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
