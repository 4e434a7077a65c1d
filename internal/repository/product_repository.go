package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopkeeper/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

const productColumns = `product_id, shop_id, name, price, quantity, created_at, updated_at`

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error)
	CountByShop(ctx context.Context, shopID int64) (int, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product using parameterized queries
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO product (shop_id, name, price, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING product_id, price, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		product.ShopID,
		product.Name,
		product.Price,
		product.Quantity,
	).Scan(&product.ID, &product.Price, &product.CreatedAt, &product.UpdatedAt)

	if err != nil {
		if mapped := classifyWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// FindByID retrieves a product by ID using parameterized queries
func (r *productRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE product_id = $1`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	return product, nil
}

// ListByShop retrieves every product of a shop in insertion order
func (r *productRepository) ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM product WHERE shop_id = $1 ORDER BY product_id ASC`

	rows, err := r.db.QueryContext(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// CountByShop counts the products of a shop
func (r *productRepository) CountByShop(ctx context.Context, shopID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM product WHERE shop_id = $1`, shopID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.ShopID,
		&product.Name,
		&product.Price,
		&product.Quantity,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}
