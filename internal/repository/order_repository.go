package repository

import (
	"context"
	"database/sql"
	"fmt"

	"shopkeeper/internal/domain"
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	ListByShop(ctx context.Context, shopID int64, status string) ([]*domain.Order, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO "order" (shop_id, product_id, quantity, total_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING order_id, order_date
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		order.ShopID,
		order.ProductID,
		order.Quantity,
		order.TotalAmount,
		order.Status,
	).Scan(&order.ID, &order.Date)

	if err != nil {
		if mapped := classifyWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// ListByShop retrieves a shop's orders, optionally restricted to one status
func (r *orderRepository) ListByShop(ctx context.Context, shopID int64, status string) ([]*domain.Order, error) {
	query := `
		SELECT order_id, shop_id, product_id, quantity, total_amount, order_date, status
		FROM "order"
		WHERE shop_id = $1
	`
	args := []interface{}{shopID}

	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY order_date DESC, order_id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []*domain.Order{}
	for rows.Next() {
		order := &domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.ShopID,
			&order.ProductID,
			&order.Quantity,
			&order.TotalAmount,
			&order.Date,
			&order.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
