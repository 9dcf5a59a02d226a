package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odisseia/erp-api/internal/domain"
)

// Tabela de tradução erro de domínio -> status + código HTTP.
func TestRespondDomainError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"carrinho vazio", domain.ErrEmptyCart, http.StatusBadRequest, "EMPTY_CART"},
		{"estoque insuficiente", &domain.InsufficientStockError{ProductID: "p1", Requested: 3, Available: 1}, http.StatusBadRequest, "INSUFFICIENT_STOCK"},
		{"produto inativo", domain.ErrProductInactive, http.StatusBadRequest, "PRODUCT_INACTIVE"},
		{"venda já cancelada", domain.ErrSaleCancelled, http.StatusBadRequest, "ALREADY_CANCELLED"},
		{"entrada inválida", domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		// 404 vale para o lookup no catálogo; na criação de venda o handler
		// traduz para 400 antes de chegar aqui.
		{"produto inexistente no catálogo", domain.ErrProductNotFound, http.StatusNotFound, "PRODUCT_NOT_FOUND"},
		{"venda inexistente", domain.ErrSaleNotFound, http.StatusNotFound, "SALE_NOT_FOUND"},
		{"registro inexistente", domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"email duplicado", domain.ErrEmailAlreadyExists, http.StatusConflict, "EMAIL_EXISTS"},
		{"registro duplicado", domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{"não autorizado", domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"erro genérico", errors.New("conexão recusada"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/boom", func(c *fiber.Ctx) error {
				return respondDomainError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			body, _ := io.ReadAll(resp.Body)
			assert.Contains(t, string(body), tc.wantCode)
		})
	}
}

// O erro de estoque insuficiente deve expor o disponível na mensagem.
func TestRespondDomainError_MensagemDeEstoque(t *testing.T) {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondDomainError(c, &domain.InsufficientStockError{
			ProductID: "p1", Requested: 5, Available: 2,
		})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "2", "a mensagem deve incluir o disponível")
}
