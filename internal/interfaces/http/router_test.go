package http

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// As rotas registradas, método e caminho, são contrato com os clientes.
func TestRouter_RotasRegistradas(t *testing.T) {
	app := fiber.New()
	Router(app, RouterDeps{JWTSecret: "segredo-de-teste"})

	registered := make(map[string]bool)
	for _, route := range app.GetRoutes() {
		registered[fmt.Sprintf("%s %s", route.Method, route.Path)] = true
	}

	want := []string{
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/users/me",
		"GET /api/users",
		"POST /api/products/",
		"GET /api/products/",
		"GET /api/products/:id",
		"PUT /api/products/:id",
		"DELETE /api/products/:id",
		"POST /api/sales/",
		"GET /api/sales/",
		"GET /api/sales/:id",
		"PATCH /api/sales/:id/cancel",
		"GET /api/contratos/stats/count",
		"GET /api/receitas/stats/mes-atual",
		"GET /api/despesas/stats/mes-atual",
		"GET /api/comissoes/stats/pendentes",
		"PUT /api/comissoes/:id/pagar",
		"GET /api/dashboard",
	}
	for _, w := range want {
		assert.True(t, registered[w], "rota ausente: %s", w)
	}

	assert.False(t, registered["PATCH /api/comissoes/:id/pagar"], "pagar é PUT")
	assert.False(t, registered["GET /api/receitas/stats/mes"], "a rota de stats é /stats/mes-atual")
}
