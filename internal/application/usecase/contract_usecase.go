package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/odisseia/erp-api/internal/application/dto"
	"github.com/odisseia/erp-api/internal/domain"
	"github.com/odisseia/erp-api/internal/domain/entity"
	"github.com/odisseia/erp-api/internal/domain/repository"
)

// ContractUseCase gestão de contratos.
type ContractUseCase struct {
	contractRepo repository.ContractRepository
}

func NewContractUseCase(contractRepo repository.ContractRepository) *ContractUseCase {
	return &ContractUseCase{contractRepo: contractRepo}
}

// CreateContract cria um contrato. Número de contrato é único.
func (uc *ContractUseCase) CreateContract(ctx context.Context, in dto.ContractRequest) (*dto.ContractResponse, error) {
	if err := validateContract(in); err != nil {
		return nil, err
	}

	now := time.Now()
	contract := &entity.Contract{
		ID:         uuid.NewString(),
		Number:     strings.TrimSpace(in.Number),
		ClientName: strings.TrimSpace(in.ClientName),
		ClientCPF:  strings.TrimSpace(in.ClientCPF),
		Value:      in.Value,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Status:     contractStatusOrDefault(in.Status),
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.contractRepo.Create(ctx, contract); err != nil {
		return nil, err
	}

	resp := toContractResponse(contract)
	return &resp, nil
}

// GetContract busca um contrato pelo ID.
func (uc *ContractUseCase) GetContract(ctx context.Context, id string) (*dto.ContractResponse, error) {
	contract, err := uc.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	resp := toContractResponse(contract)
	return &resp, nil
}

// ListContracts lista os contratos, mais recentes primeiro.
func (uc *ContractUseCase) ListContracts(ctx context.Context) (*dto.ContractListResponse, error) {
	contracts, err := uc.contractRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.ContractListResponse{Success: true, Data: []dto.ContractResponse{}}
	for _, c := range contracts {
		out.Data = append(out.Data, toContractResponse(c))
	}
	out.Count = len(out.Data)
	return out, nil
}

// UpdateContract substitui os campos editáveis do contrato.
func (uc *ContractUseCase) UpdateContract(ctx context.Context, id string, in dto.ContractRequest) (*dto.ContractResponse, error) {
	if err := validateContract(in); err != nil {
		return nil, err
	}

	contract, err := uc.contractRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}

	contract.Number = strings.TrimSpace(in.Number)
	contract.ClientName = strings.TrimSpace(in.ClientName)
	contract.ClientCPF = strings.TrimSpace(in.ClientCPF)
	contract.Value = in.Value
	contract.StartDate = in.StartDate
	contract.EndDate = in.EndDate
	contract.Status = contractStatusOrDefault(in.Status)
	contract.Notes = in.Notes
	contract.UpdatedAt = time.Now()

	if err := uc.contractRepo.Update(ctx, contract); err != nil {
		return nil, err
	}
	resp := toContractResponse(contract)
	return &resp, nil
}

// DeleteContract remove o contrato.
func (uc *ContractUseCase) DeleteContract(ctx context.Context, id string) error {
	return uc.contractRepo.Delete(ctx, id)
}

// CountActive conta os contratos ativos (stat do dashboard antigo).
func (uc *ContractUseCase) CountActive(ctx context.Context) (int64, error) {
	return uc.contractRepo.CountActive(ctx)
}

func validateContract(in dto.ContractRequest) error {
	if strings.TrimSpace(in.Number) == "" || strings.TrimSpace(in.ClientName) == "" {
		return domain.ErrInvalidInput
	}
	if in.Value.IsNegative() {
		return domain.ErrInvalidInput
	}
	switch in.Status {
	case "", entity.ContractStatusActive, entity.ContractStatusClosed, entity.ContractStatusCancelled:
		return nil
	default:
		return domain.ErrInvalidInput
	}
}

func contractStatusOrDefault(status string) string {
	if status == "" {
		return entity.ContractStatusActive
	}
	return status
}

func toContractResponse(c *entity.Contract) dto.ContractResponse {
	return dto.ContractResponse{
		ID:         c.ID,
		Number:     c.Number,
		ClientName: c.ClientName,
		ClientCPF:  c.ClientCPF,
		Value:      c.Value,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		Status:     c.Status,
		Notes:      c.Notes,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
