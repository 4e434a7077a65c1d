package repository

import (
	"context"
	"database/sql"
	"fmt"

	"shopkeeper/internal/domain"

	"github.com/shopspring/decimal"
)

// CartRepository defines the interface for cart data access
type CartRepository interface {
	Create(ctx context.Context, item *domain.CartItem) error
	SumSubtotals(ctx context.Context, customerID int64) (decimal.Decimal, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.CartItem, error)
	ListLines(ctx context.Context, customerID int64) ([]*domain.CartLine, error)
	DeleteByCustomer(ctx context.Context, customerID int64) (int64, error)
}

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new instance of CartRepository
func NewCartRepository(db *sql.DB) CartRepository {
	return &cartRepository{db: db}
}

// Create inserts a cart row. Rows for the same product are never merged.
func (r *cartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	query := `
		INSERT INTO cart (customer_id, product_id, quantity, subtotal, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING cart_id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		item.CustomerID,
		item.ProductID,
		item.Quantity,
		item.Subtotal,
		item.Total,
	).Scan(&item.ID)

	if err != nil {
		if mapped := classifyWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create cart item: %w", err)
	}

	return nil
}

// SumSubtotals returns the sum of subtotals over the customer's cart, zero when empty
func (r *cartRepository) SumSubtotals(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COALESCE(SUM(subtotal), 0) FROM cart WHERE customer_id = $1`,
		customerID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum cart subtotals: %w", err)
	}
	return sum, nil
}

// ListByCustomer retrieves the raw cart rows of a customer
func (r *cartRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.CartItem, error) {
	query := `
		SELECT cart_id, customer_id, product_id, quantity, subtotal, total
		FROM cart
		WHERE customer_id = $1
		ORDER BY cart_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	items := []*domain.CartItem{}
	for rows.Next() {
		item := &domain.CartItem{}
		err := rows.Scan(
			&item.ID,
			&item.CustomerID,
			&item.ProductID,
			&item.Quantity,
			&item.Subtotal,
			&item.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// ListLines retrieves the customer's cart joined with product names
func (r *cartRepository) ListLines(ctx context.Context, customerID int64) ([]*domain.CartLine, error) {
	query := `
		SELECT c.cart_id, c.product_id, p.name, c.quantity, c.subtotal
		FROM cart c
		JOIN product p ON p.product_id = c.product_id
		WHERE c.customer_id = $1
		ORDER BY c.cart_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}
	defer rows.Close()

	lines := []*domain.CartLine{}
	for rows.Next() {
		line := &domain.CartLine{}
		if err := rows.Scan(&line.CartID, &line.ProductID, &line.Name, &line.Quantity, &line.Subtotal); err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart lines: %w", err)
	}

	return lines, nil
}

// DeleteByCustomer clears a customer's cart and returns the number of removed rows
func (r *cartRepository) DeleteByCustomer(ctx context.Context, customerID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cart WHERE customer_id = $1`, customerID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cart: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
