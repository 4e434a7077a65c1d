package service

import (
	"context"
	"fmt"

	"shopkeeper/internal/domain"
	"shopkeeper/internal/repository"

	"github.com/shopspring/decimal"
)

// ExpenseService defines the interface for expense operations
type ExpenseService interface {
	CreateExpense(ctx context.Context, shopID int64, amount decimal.Decimal, description string) (*domain.Expense, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Expense, error)
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new instance of ExpenseService
func NewExpenseService(expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) CreateExpense(ctx context.Context, shopID int64, amount decimal.Decimal, description string) (*domain.Expense, error) {
	if shopID <= 0 {
		return nil, ErrMissingShopID
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	expense := &domain.Expense{
		ShopID:      shopID,
		Amount:      amount,
		Description: description,
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

func (s *expenseService) ListByShop(ctx context.Context, shopID int64) ([]*domain.Expense, error) {
	if shopID <= 0 {
		return nil, ErrMissingShopID
	}

	expenses, err := s.expenseRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}
