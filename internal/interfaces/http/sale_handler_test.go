package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odisseia/erp-api/internal/application/sales"
	"github.com/odisseia/erp-api/internal/domain"
	"github.com/odisseia/erp-api/internal/domain/entity"
	"github.com/odisseia/erp-api/internal/domain/repository"
)

// Ledger cuja reserva sempre falha com o erro configurado.
type failingLedger struct {
	err error
}

func (l *failingLedger) Reserve(ctx context.Context, productID string, qty int64) error {
	return l.err
}

func (l *failingLedger) Release(ctx context.Context, productID string, qty int64) error {
	return nil
}

type noopProductRepo struct{}

func (noopProductRepo) Create(context.Context, *entity.Product) error { return nil }
func (noopProductRepo) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (noopProductRepo) GetBySKU(context.Context, string) (*entity.Product, error) {
	return nil, nil
}
func (noopProductRepo) Update(context.Context, *entity.Product) error { return nil }
func (noopProductRepo) ListActive(context.Context) ([]*entity.Product, error) {
	return nil, nil
}
func (noopProductRepo) Deactivate(context.Context, string) error { return nil }

type noopSaleRepo struct{}

func (noopSaleRepo) Create(context.Context, *entity.Sale) error         { return nil }
func (noopSaleRepo) CreateItem(context.Context, *entity.SaleItem) error { return nil }
func (noopSaleRepo) GetByID(context.Context, string) (*entity.Sale, error) {
	return nil, nil
}
func (noopSaleRepo) List(context.Context) ([]*entity.Sale, error) { return nil, nil }
func (noopSaleRepo) CancelCompleted(context.Context, string) (bool, error) {
	return false, nil
}

// TxRunner sem transação de verdade: entrega o ledger configurado à função.
type stubTxRunner struct {
	ledger repository.StockLedger
}

func (r *stubTxRunner) Run(ctx context.Context, fn func(
	ledger repository.StockLedger,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(r.ledger, noopProductRepo{}, noopSaleRepo{})
}

func postSale(t *testing.T, ledgerErr error) *http.Response {
	t.Helper()

	uc := sales.NewUseCase(&stubTxRunner{ledger: &failingLedger{err: ledgerErr}}, noopSaleRepo{}, noopProductRepo{})
	handler := NewSaleHandler(uc)

	app := fiber.New()
	app.Post("/api/sales", handler.Create)

	body := `{"items":[{"productId":"p-sumiu","quantity":1,"price":"10.00"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/sales", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Produto inexistente numa linha da venda é 400, não 404: a rota existe, o
// pedido é que está errado.
func TestSaleHandlerCreate_ProdutoInexistenteRetorna400(t *testing.T) {
	resp := postSale(t, domain.ErrProductNotFound)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PRODUCT_NOT_FOUND")
}

// Os demais erros de linha continuam na tradução padrão.
func TestSaleHandlerCreate_EstoqueInsuficienteRetorna400(t *testing.T) {
	resp := postSale(t, &domain.InsufficientStockError{ProductID: "p1", Requested: 1, Available: 0})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INSUFFICIENT_STOCK")
}
