package repository

import (
	"context"
	"database/sql"
	"fmt"

	"shopkeeper/internal/domain"

	"github.com/shopspring/decimal"
)

// SaleRepository defines the interface for sale data access.
// Sales are append-only: there is no update or delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Sale, error)
	CountByShop(ctx context.Context, shopID int64) (int, error)
	SumTotalByShop(ctx context.Context, shopID int64) (decimal.Decimal, error)
}

type saleRepository struct {
	db *sql.DB
}

// NewSaleRepository creates a new instance of SaleRepository
func NewSaleRepository(db *sql.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	query := `
		INSERT INTO sell (shop_id, customer_id, total_amount)
		VALUES ($1, $2, $3)
		RETURNING sell_id, date_of_sale
	`

	err := r.db.QueryRowContext(ctx, query, sale.ShopID, sale.CustomerID, sale.TotalAmount).
		Scan(&sale.ID, &sale.Date)
	if err != nil {
		if mapped := classifyWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create sale: %w", err)
	}

	return nil
}

func (r *saleRepository) ListByShop(ctx context.Context, shopID int64) ([]*domain.Sale, error) {
	query := `
		SELECT sell_id, shop_id, customer_id, total_amount, date_of_sale
		FROM sell
		WHERE shop_id = $1
		ORDER BY date_of_sale DESC, sell_id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	sales := []*domain.Sale{}
	for rows.Next() {
		sale := &domain.Sale{}
		if err := rows.Scan(&sale.ID, &sale.ShopID, &sale.CustomerID, &sale.TotalAmount, &sale.Date); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) CountByShop(ctx context.Context, shopID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sell WHERE shop_id = $1`, shopID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	return count, nil
}

// SumTotalByShop returns the shop's revenue, zero when it has no sales
func (r *saleRepository) SumTotalByShop(ctx context.Context, shopID int64) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRowContext(
		ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM sell WHERE shop_id = $1`,
		shopID,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum sales: %w", err)
	}
	return sum, nil
}
