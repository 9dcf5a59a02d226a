package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/odisseia/erp-api/internal/application/dto"
	"github.com/odisseia/erp-api/internal/domain"
	"github.com/odisseia/erp-api/internal/domain/entity"
	"github.com/odisseia/erp-api/internal/domain/repository"
)

// CommissionUseCase gestão de comissões de corretores.
type CommissionUseCase struct {
	commissionRepo repository.CommissionRepository
}

func NewCommissionUseCase(commissionRepo repository.CommissionRepository) *CommissionUseCase {
	return &CommissionUseCase{commissionRepo: commissionRepo}
}

// CreateCommission cria uma comissão pendente.
func (uc *CommissionUseCase) CreateCommission(ctx context.Context, in dto.CommissionRequest) (*dto.CommissionResponse, error) {
	if err := validateCommission(in); err != nil {
		return nil, err
	}

	now := time.Now()
	commission := &entity.Commission{
		ID:         uuid.NewString(),
		ContractID: in.ContractID,
		BrokerName: strings.TrimSpace(in.BrokerName),
		Percentage: in.Percentage,
		Value:      in.Value,
		DueDate:    in.DueDate,
		Status:     commissionStatusOrDefault(in.Status),
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.commissionRepo.Create(ctx, commission); err != nil {
		return nil, err
	}

	resp := toCommissionResponse(commission)
	return &resp, nil
}

// GetCommission busca uma comissão pelo ID.
func (uc *CommissionUseCase) GetCommission(ctx context.Context, id string) (*dto.CommissionResponse, error) {
	commission, err := uc.commissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if commission == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCommissionResponse(commission)
	return &resp, nil
}

// ListCommissions lista as comissões, mais recentes primeiro.
func (uc *CommissionUseCase) ListCommissions(ctx context.Context) ([]dto.CommissionResponse, error) {
	commissions, err := uc.commissionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommissionResponse, 0, len(commissions))
	for _, c := range commissions {
		out = append(out, toCommissionResponse(c))
	}
	return out, nil
}

// UpdateCommission substitui os campos editáveis da comissão.
func (uc *CommissionUseCase) UpdateCommission(ctx context.Context, id string, in dto.CommissionRequest) (*dto.CommissionResponse, error) {
	if err := validateCommission(in); err != nil {
		return nil, err
	}

	commission, err := uc.commissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if commission == nil {
		return nil, domain.ErrNotFound
	}

	commission.ContractID = in.ContractID
	commission.BrokerName = strings.TrimSpace(in.BrokerName)
	commission.Percentage = in.Percentage
	commission.Value = in.Value
	commission.DueDate = in.DueDate
	commission.Status = commissionStatusOrDefault(in.Status)
	commission.Notes = in.Notes
	commission.UpdatedAt = time.Now()

	if err := uc.commissionRepo.Update(ctx, commission); err != nil {
		return nil, err
	}
	resp := toCommissionResponse(commission)
	return &resp, nil
}

// DeleteCommission remove a comissão.
func (uc *CommissionUseCase) DeleteCommission(ctx context.Context, id string) error {
	return uc.commissionRepo.Delete(ctx, id)
}

// MarkAsPaid marca a comissão como paga e registra a data do pagamento.
func (uc *CommissionUseCase) MarkAsPaid(ctx context.Context, id string) (*dto.CommissionResponse, error) {
	commission, err := uc.commissionRepo.MarkAsPaid(ctx, id)
	if err != nil {
		return nil, err
	}
	if commission == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCommissionResponse(commission)
	return &resp, nil
}

// SumPending soma as comissões pendentes.
func (uc *CommissionUseCase) SumPending(ctx context.Context) (decimal.Decimal, error) {
	return uc.commissionRepo.SumPending(ctx)
}

func validateCommission(in dto.CommissionRequest) error {
	if strings.TrimSpace(in.ContractID) == "" || strings.TrimSpace(in.BrokerName) == "" {
		return domain.ErrInvalidInput
	}
	if in.Value.IsNegative() || in.Percentage.IsNegative() {
		return domain.ErrInvalidInput
	}
	switch in.Status {
	case "", entity.CommissionStatusPending, entity.CommissionStatusPaid, entity.CommissionStatusCancelled:
		return nil
	default:
		return domain.ErrInvalidInput
	}
}

func commissionStatusOrDefault(status string) string {
	if status == "" {
		return entity.CommissionStatusPending
	}
	return status
}

func toCommissionResponse(c *entity.Commission) dto.CommissionResponse {
	return dto.CommissionResponse{
		ID:         c.ID,
		ContractID: c.ContractID,
		BrokerName: c.BrokerName,
		Percentage: c.Percentage,
		Value:      c.Value,
		DueDate:    c.DueDate,
		Status:     c.Status,
		PaidAt:     c.PaidAt,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
