package sales

import (
	"context"

	"github.com/odisseia/erp-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. É a unidade de trabalho do serviço de
// vendas: todas as reservas de estoque e a escrita de cabeçalho + itens de
// uma venda comitam ou falham juntas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledger repository.StockLedger,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
