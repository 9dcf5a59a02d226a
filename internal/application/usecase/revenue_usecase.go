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

// RevenueUseCase gestão de receitas.
type RevenueUseCase struct {
	revenueRepo repository.RevenueRepository
}

func NewRevenueUseCase(revenueRepo repository.RevenueRepository) *RevenueUseCase {
	return &RevenueUseCase{revenueRepo: revenueRepo}
}

// CreateRevenue cria uma receita.
func (uc *RevenueUseCase) CreateRevenue(ctx context.Context, in dto.RevenueRequest) (*dto.RevenueResponse, error) {
	if strings.TrimSpace(in.Description) == "" || !in.Value.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	revenue := &entity.Revenue{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(in.Description),
		Value:       in.Value,
		Category:    in.Category,
		ReceivedAt:  in.ReceivedAt,
		ContractID:  in.ContractID,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.revenueRepo.Create(ctx, revenue); err != nil {
		return nil, err
	}

	resp := toRevenueResponse(revenue)
	return &resp, nil
}

// GetRevenue busca uma receita pelo ID.
func (uc *RevenueUseCase) GetRevenue(ctx context.Context, id string) (*dto.RevenueResponse, error) {
	revenue, err := uc.revenueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		return nil, domain.ErrNotFound
	}
	resp := toRevenueResponse(revenue)
	return &resp, nil
}

// ListRevenues lista as receitas, mais recentes primeiro.
func (uc *RevenueUseCase) ListRevenues(ctx context.Context) ([]dto.RevenueResponse, error) {
	revenues, err := uc.revenueRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RevenueResponse, 0, len(revenues))
	for _, r := range revenues {
		out = append(out, toRevenueResponse(r))
	}
	return out, nil
}

// UpdateRevenue substitui os campos editáveis da receita.
func (uc *RevenueUseCase) UpdateRevenue(ctx context.Context, id string, in dto.RevenueRequest) (*dto.RevenueResponse, error) {
	if strings.TrimSpace(in.Description) == "" || !in.Value.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	revenue, err := uc.revenueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if revenue == nil {
		return nil, domain.ErrNotFound
	}

	revenue.Description = strings.TrimSpace(in.Description)
	revenue.Value = in.Value
	revenue.Category = in.Category
	revenue.ReceivedAt = in.ReceivedAt
	revenue.ContractID = in.ContractID
	revenue.Notes = in.Notes
	revenue.UpdatedAt = time.Now()

	if err := uc.revenueRepo.Update(ctx, revenue); err != nil {
		return nil, err
	}
	resp := toRevenueResponse(revenue)
	return &resp, nil
}

// DeleteRevenue remove a receita.
func (uc *RevenueUseCase) DeleteRevenue(ctx context.Context, id string) error {
	return uc.revenueRepo.Delete(ctx, id)
}

// SumCurrentMonth soma as receitas do mês corrente.
func (uc *RevenueUseCase) SumCurrentMonth(ctx context.Context) (decimal.Decimal, error) {
	return uc.revenueRepo.SumCurrentMonth(ctx)
}

func toRevenueResponse(r *entity.Revenue) dto.RevenueResponse {
	return dto.RevenueResponse{
		ID:          r.ID,
		Description: r.Description,
		Value:       r.Value,
		Category:    r.Category,
		ReceivedAt:  r.ReceivedAt,
		ContractID:  r.ContractID,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
