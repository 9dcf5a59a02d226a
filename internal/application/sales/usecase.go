package sales

import (
	"context"

	"github.com/odisseia/erp-api/internal/application/dto"
	"github.com/odisseia/erp-api/internal/domain"
	"github.com/odisseia/erp-api/internal/domain/entity"
	"github.com/odisseia/erp-api/internal/domain/repository"
)

// UseCase é o único ponto de entrada para criar e cancelar vendas. Toda
// mutação de estoque passa pelo StockLedger dentro da transação do TxRunner;
// nada aqui retenta automaticamente — repetir uma reserva sem revalidar
// disponibilidade poderia vender além do estoque.
type UseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewUseCase constrói o caso de uso de vendas. saleRepo/productRepo são
// atados ao pool e usados só em leituras; as escritas acontecem nos
// repositórios atados à tx que o TxRunner entrega.
func NewUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// CreateSale valida as linhas, reserva estoque linha a linha na ordem de
// entrada e persiste cabeçalho + itens, tudo em uma única transação. Se
// qualquer linha falhar (produto inexistente, inativo ou sem estoque), nenhuma
// reserva anterior da mesma chamada sobrevive: a transação inteira é desfeita
// e o estoque fica como se a venda nunca tivesse acontecido.
//
// Duas linhas para o mesmo produto são reservas independentes contra o mesmo
// saldo vivo, avaliadas na ordem de entrada.
func (uc *UseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	lines := make([]entity.SaleLine, 0, len(in.Items))
	for _, item := range in.Items {
		lines = append(lines, entity.SaleLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	// O agregado é computação pura: carrinho vazio ou linha inválida falham
	// aqui, antes de qualquer acesso ao banco.
	sale, err := entity.NewSale(userID, lines)
	if err != nil {
		return nil, err
	}

	products := make(map[string]*entity.Product, len(sale.Items))
	err = uc.txRunner.Run(ctx, func(
		ledger repository.StockLedger,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		for _, item := range sale.Items {
			// Reserve é a guarda: checagem e decremento em um único passo
			// atômico por linha de produto.
			if err := ledger.Reserve(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
			if _, ok := products[item.ProductID]; !ok {
				product, err := productRepo.GetByID(ctx, item.ProductID)
				if err != nil {
					return err
				}
				products[item.ProductID] = product
			}
		}

		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		for i := range sale.Items {
			if err := saleRepo.CreateItem(ctx, &sale.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toSaleResponse(sale, products)
	return &resp, nil
}

// CancelSale reverte uma venda: flipa o status com guarda condicional (só sai
// de "completed") e devolve o estoque de cada item exatamente uma vez, na
// mesma transação. Cancelar de novo falha com ErrSaleCancelled — o duplo
// cancelamento é exposto, não escondido.
func (uc *UseCase) CancelSale(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	var resp dto.SaleResponse
	err := uc.txRunner.Run(ctx, func(
		ledger repository.StockLedger,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		flipped, err := saleRepo.CancelCompleted(ctx, saleID)
		if err != nil {
			return err
		}
		if !flipped {
			// Nenhuma linha mudou: venda inexistente ou já cancelada.
			sale, err := saleRepo.GetByID(ctx, saleID)
			if err != nil {
				return err
			}
			if sale == nil {
				return domain.ErrSaleNotFound
			}
			return domain.ErrSaleCancelled
		}

		sale, err := saleRepo.GetByID(ctx, saleID)
		if err != nil {
			return err
		}
		products := make(map[string]*entity.Product, len(sale.Items))
		for _, item := range sale.Items {
			if err := ledger.Release(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
			if _, ok := products[item.ProductID]; !ok {
				product, err := productRepo.GetByID(ctx, item.ProductID)
				if err != nil {
					return err
				}
				products[item.ProductID] = product
			}
		}
		resp = toSaleResponse(sale, products)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetSale devolve a venda com itens e produtos resolvidos, ou ErrSaleNotFound.
func (uc *UseCase) GetSale(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	products, err := uc.resolveProducts(ctx, sale)
	if err != nil {
		return nil, err
	}
	resp := toSaleResponse(sale, products)
	return &resp, nil
}

// ListSales devolve as vendas com itens, mais recentes primeiro.
func (uc *UseCase) ListSales(ctx context.Context) (*dto.SaleListResponse, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := dto.SaleListResponse{Data: []dto.SaleResponse{}}
	for _, sale := range sales {
		products, err := uc.resolveProducts(ctx, sale)
		if err != nil {
			return nil, err
		}
		out.Data = append(out.Data, toSaleResponse(sale, products))
	}
	out.Count = len(out.Data)
	return &out, nil
}

func (uc *UseCase) resolveProducts(ctx context.Context, sale *entity.Sale) (map[string]*entity.Product, error) {
	products := make(map[string]*entity.Product, len(sale.Items))
	for _, item := range sale.Items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		products[item.ProductID] = product
	}
	return products, nil
}

func toSaleResponse(sale *entity.Sale, products map[string]*entity.Product) dto.SaleResponse {
	resp := dto.SaleResponse{
		ID:        sale.ID,
		UserID:    sale.UserID,
		Total:     sale.Total,
		Status:    sale.Status,
		CreatedAt: sale.CreatedAt,
	}
	for _, item := range sale.Items {
		itemResp := dto.SaleItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		}
		if p := products[item.ProductID]; p != nil {
			itemResp.Product = &dto.ProductResponse{
				ID:          p.ID,
				SKU:         p.SKU,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Cost:        p.Cost,
				Stock:       p.Stock,
				Active:      p.Active,
				CreatedAt:   p.CreatedAt,
				UpdatedAt:   p.UpdatedAt,
			}
		}
		resp.Items = append(resp.Items, itemResp)
	}
	return resp
}
