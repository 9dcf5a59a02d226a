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

// ExpenseUseCase gestão de despesas.
type ExpenseUseCase struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseUseCase(expenseRepo repository.ExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{expenseRepo: expenseRepo}
}

// CreateExpense cria uma despesa.
func (uc *ExpenseUseCase) CreateExpense(ctx context.Context, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if strings.TrimSpace(in.Description) == "" || !in.Value.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	expense := &entity.Expense{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(in.Description),
		Value:       in.Value,
		Category:    in.Category,
		PaidAt:      in.PaidAt,
		ContractID:  in.ContractID,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	resp := toExpenseResponse(expense)
	return &resp, nil
}

// GetExpense busca uma despesa pelo ID.
func (uc *ExpenseUseCase) GetExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// ListExpenses lista as despesas, mais recentes primeiro.
func (uc *ExpenseUseCase) ListExpenses(ctx context.Context) ([]dto.ExpenseResponse, error) {
	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out, nil
}

// UpdateExpense substitui os campos editáveis da despesa.
func (uc *ExpenseUseCase) UpdateExpense(ctx context.Context, id string, in dto.ExpenseRequest) (*dto.ExpenseResponse, error) {
	if strings.TrimSpace(in.Description) == "" || !in.Value.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	expense, err := uc.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}

	expense.Description = strings.TrimSpace(in.Description)
	expense.Value = in.Value
	expense.Category = in.Category
	expense.PaidAt = in.PaidAt
	expense.ContractID = in.ContractID
	expense.Notes = in.Notes
	expense.UpdatedAt = time.Now()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// DeleteExpense remove a despesa.
func (uc *ExpenseUseCase) DeleteExpense(ctx context.Context, id string) error {
	return uc.expenseRepo.Delete(ctx, id)
}

// SumCurrentMonth soma as despesas do mês corrente.
func (uc *ExpenseUseCase) SumCurrentMonth(ctx context.Context) (decimal.Decimal, error) {
	return uc.expenseRepo.SumCurrentMonth(ctx)
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Description: e.Description,
		Value:       e.Value,
		Category:    e.Category,
		PaidAt:      e.PaidAt,
		ContractID:  e.ContractID,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
