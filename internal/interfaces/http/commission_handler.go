package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/odisseia/erp-api/internal/application/dto"
	"github.com/odisseia/erp-api/internal/application/usecase"
)

// CommissionHandler trata as requisições HTTP de comissões (protegido).
type CommissionHandler struct {
	uc *usecase.CommissionUseCase
}

// NewCommissionHandler constrói o handler.
func NewCommissionHandler(uc *usecase.CommissionUseCase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

// Create cria uma comissão.
func (h *CommissionHandler) Create(c *fiber.Ctx) error {
	var in dto.CommissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CreateCommission(c.UserContext(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID busca uma comissão pelo ID.
func (h *CommissionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.GetCommission(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List lista as comissões.
func (h *CommissionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListCommissions(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update atualiza uma comissão.
func (h *CommissionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.CommissionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.UpdateCommission(c.UserContext(), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete remove uma comissão.
func (h *CommissionHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	if err := h.uc.DeleteCommission(c.UserContext(), id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAsPaid marca a comissão como paga.
func (h *CommissionHandler) MarkAsPaid(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.MarkAsPaid(c.UserContext(), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SumPending soma as comissões pendentes.
func (h *CommissionHandler) SumPending(c *fiber.Ctx) error {
	total, err := h.uc.SumPending(c.UserContext())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.SumResponse{Success: true, Total: total})
}
