package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odisseia/erp-api/internal/domain"
	"github.com/odisseia/erp-api/internal/domain/entity"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

func line(productID string, qty int64, price string) entity.SaleLine {
	return entity.SaleLine{
		ProductID: productID,
		Quantity:  qty,
		Price:     decimal.RequireFromString(price),
	}
}

// Caso feliz: os subtotais e o total são calculados por linha e a ordem de
// entrada é preservada.
func TestNewSale_CalculaTotais(t *testing.T) {
	sale, err := entity.NewSale(testUserID, []entity.SaleLine{
		line("p1", 2, "10.50"),
		line("p2", 3, "7.00"),
	})
	require.NoError(t, err)
	require.Len(t, sale.Items, 2)

	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
	assert.Equal(t, testUserID, sale.UserID)
	assert.NotEmpty(t, sale.ID)

	assert.Equal(t, "p1", sale.Items[0].ProductID)
	assert.True(t, sale.Items[0].Subtotal.Equal(decimal.RequireFromString("21.00")),
		"subtotal da primeira linha deve ser 2 x 10.50")
	assert.True(t, sale.Items[1].Subtotal.Equal(decimal.RequireFromString("21.00")),
		"subtotal da segunda linha deve ser 3 x 7.00")
	assert.True(t, sale.Total.Equal(decimal.RequireFromString("42.00")),
		"total deve ser a soma dos subtotais")

	for _, item := range sale.Items {
		assert.Equal(t, sale.ID, item.SaleID)
		assert.NotEmpty(t, item.ID)
	}
}

// Duas linhas do mesmo produto são itens independentes, não são fundidas.
func TestNewSale_LinhasDuplicadasDoMesmoProduto(t *testing.T) {
	sale, err := entity.NewSale(testUserID, []entity.SaleLine{
		line("p1", 1, "5.00"),
		line("p1", 2, "5.00"),
	})
	require.NoError(t, err)
	require.Len(t, sale.Items, 2)
	assert.True(t, sale.Total.Equal(decimal.RequireFromString("15.00")))
}

func TestNewSale_CarrinhoVazio(t *testing.T) {
	sale, err := entity.NewSale(testUserID, nil)
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestNewSale_QuantidadeInvalida(t *testing.T) {
	_, err := entity.NewSale(testUserID, []entity.SaleLine{line("p1", 0, "5.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewSale(testUserID, []entity.SaleLine{line("p1", -3, "5.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewSale_PrecoInvalido(t *testing.T) {
	_, err := entity.NewSale(testUserID, []entity.SaleLine{line("p1", 1, "0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewSale(testUserID, []entity.SaleLine{line("p1", 1, "-2.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewSale_ProdutoVazio(t *testing.T) {
	_, err := entity.NewSale(testUserID, []entity.SaleLine{line("", 1, "5.00")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Uma linha inválida invalida a venda inteira, mesmo com linhas boas antes.
func TestNewSale_LinhaInvalidaRejeitaTudo(t *testing.T) {
	sale, err := entity.NewSale(testUserID, []entity.SaleLine{
		line("p1", 2, "10.00"),
		line("p2", 0, "3.00"),
	})
	assert.Nil(t, sale)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancel_TransicionaParaCancelled(t *testing.T) {
	sale, err := entity.NewSale(testUserID, []entity.SaleLine{line("p1", 1, "5.00")})
	require.NoError(t, err)

	require.NoError(t, sale.Cancel())
	assert.Equal(t, entity.SaleStatusCancelled, sale.Status)
}

func TestCancel_DuploCancelamento(t *testing.T) {
	sale, err := entity.NewSale(testUserID, []entity.SaleLine{line("p1", 1, "5.00")})
	require.NoError(t, err)

	require.NoError(t, sale.Cancel())
	assert.ErrorIs(t, sale.Cancel(), domain.ErrSaleCancelled,
		"cancelar duas vezes deve falhar na segunda")
}
