package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/odisseia/erp-api/internal/domain"
)

// Status de uma venda. Não existe estado rascunho persistido: uma venda só é
// criada depois de totalmente validada, já como "completed".
const (
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// Sale é o agregado de uma venda: cabeçalho + itens na ordem de entrada.
// Invariante: Total == soma de Subtotal dos itens, sempre.
type Sale struct {
	ID        string
	UserID    string // criador; imutável após a criação
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
	Items     []SaleItem
}

// SaleItem é uma linha da venda. Pertence a exatamente uma venda e referencia
// o produto por ID (referência fraca: o produto pode ser desativado depois sem
// invalidar o histórico). Price é o preço unitário capturado no momento da
// venda, independente do preço atual do catálogo.
type SaleItem struct {
	ID        string
	SaleID    string
	ProductID string
	Quantity  int64
	Price     decimal.Decimal
	Subtotal  decimal.Decimal // Price * Quantity
}

// SaleLine é uma linha do pedido de criação, ainda não validada.
type SaleLine struct {
	ProductID string
	Quantity  int64
	Price     decimal.Decimal
}

// NewSale constrói o agregado a partir das linhas do pedido, na ordem de
// entrada. Rejeita carrinho vazio, quantidade <= 0 e preço <= 0. O subtotal de
// cada item e o total são calculados aqui; o preço informado pelo chamador é
// preservado (não é substituído pelo preço atual do catálogo).
func NewSale(userID string, lines []SaleLine) (*Sale, error) {
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	now := time.Now()
	sale := &Sale{
		ID:        uuid.New().String(),
		UserID:    userID,
		Status:    SaleStatusCompleted,
		CreatedAt: now,
	}
	total := decimal.Zero
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 || !line.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		subtotal := line.Price.Mul(decimal.NewFromInt(line.Quantity))
		sale.Items = append(sale.Items, SaleItem{
			ID:        uuid.New().String(),
			SaleID:    sale.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}
	sale.Total = total
	return sale, nil
}

// Cancel transiciona completed -> cancelled. Cancelar uma venda já cancelada
// retorna ErrSaleCancelled: o duplo cancelamento é exposto ao chamador, não
// vira no-op silencioso.
func (s *Sale) Cancel() error {
	if s.Status == SaleStatusCancelled {
		return domain.ErrSaleCancelled
	}
	s.Status = SaleStatusCancelled
	return nil
}
