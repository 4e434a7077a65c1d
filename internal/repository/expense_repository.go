package repository

import (
	"context"
	"database/sql"
	"fmt"

	"shopkeeper/internal/domain"
)

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Expense, error)
}

type expenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new instance of ExpenseRepository
func NewExpenseRepository(db *sql.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	query := `
		INSERT INTO expense (shop_id, amount, description)
		VALUES ($1, $2, $3)
		RETURNING expense_id, amount, expense_date
	`

	err := r.db.QueryRowContext(ctx, query, expense.ShopID, expense.Amount, nullable(expense.Description)).
		Scan(&expense.ID, &expense.Amount, &expense.Date)
	if err != nil {
		if mapped := classifyWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

func (r *expenseRepository) ListByShop(ctx context.Context, shopID int64) ([]*domain.Expense, error) {
	query := `
		SELECT expense_id, shop_id, amount, COALESCE(description, ''), expense_date
		FROM expense
		WHERE shop_id = $1
		ORDER BY expense_date DESC, expense_id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []*domain.Expense{}
	for rows.Next() {
		expense := &domain.Expense{}
		if err := rows.Scan(&expense.ID, &expense.ShopID, &expense.Amount, &expense.Description, &expense.Date); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}
