package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")

	ErrEmptyCart         = errors.New("a venda deve ter pelo menos um item")
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrProductInactive   = errors.New("produto inativo")
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrSaleCancelled     = errors.New("venda já cancelada")
	ErrInsufficientStock = errors.New("estoque insuficiente")
)

// InsufficientStockError indica que um produto não tinha estoque para a
// quantidade pedida. Carrega o disponível no momento da tentativa, para a
// mensagem ao usuário. errors.Is(err, ErrInsufficientStock) é verdadeiro.
type InsufficientStockError struct {
	ProductID string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para o produto %s: pedido %d, disponível %d",
		e.ProductID, e.Requested, e.Available)
}

// Is permite comparar com o sentinel ErrInsufficientStock.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
