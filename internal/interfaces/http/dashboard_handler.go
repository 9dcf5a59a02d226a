package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/odisseia/erp-api/internal/application/analytics"
)

// DashboardHandler expõe o resumo financeiro do mês (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devolve o resumo financeiro do mês corrente.
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
