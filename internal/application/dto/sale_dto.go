package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest uma linha do pedido de venda.
type SaleItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSaleRequest entrada para criar uma venda. A ordem das linhas é
// preservada; duas linhas do mesmo produto são reservas independentes contra
// o mesmo estoque, avaliadas na ordem de entrada.
type CreateSaleRequest struct {
	Items []SaleItemRequest `json:"items"`
}

// SaleItemResponse uma linha da venda persistida.
type SaleItemResponse struct {
	ProductID string           `json:"productId"`
	Quantity  int64            `json:"quantity"`
	Price     decimal.Decimal  `json:"price"`
	Subtotal  decimal.Decimal  `json:"subtotal"`
	Product   *ProductResponse `json:"product,omitempty"`
}

// SaleResponse a venda persistida, completa e consistente: o chamador recebe
// isto ou um erro, nunca uma venda pela metade.
type SaleResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Total     decimal.Decimal    `json:"total"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	Items     []SaleItemResponse `json:"items"`
}

// SaleListResponse lista de vendas.
type SaleListResponse struct {
	Count int            `json:"count"`
	Data  []SaleResponse `json:"data"`
}
