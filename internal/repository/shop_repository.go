package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopkeeper/internal/domain"
)

var (
	ErrShopNotFound = errors.New("shop not found")
)

const shopColumns = `shop_id, shop_name, COALESCE(location, ''), COALESCE(type, ''), status, COALESCE(shop_image, ''), owner_id`

// ShopRepository defines the interface for shop, shop_owner and shop_customer data access
type ShopRepository interface {
	Create(ctx context.Context, shop *domain.Shop) error
	CreateOwner(ctx context.Context, owner *domain.ShopOwner) error
	FindByID(ctx context.Context, id int64) (*domain.Shop, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Shop, error)
	AddCustomer(ctx context.Context, link *domain.ShopCustomer) error
	ListCustomers(ctx context.Context, shopID int64) ([]*domain.Customer, error)
}

type shopRepository struct {
	db *sql.DB
}

// NewShopRepository creates a new instance of ShopRepository
func NewShopRepository(db *sql.DB) ShopRepository {
	return &shopRepository{db: db}
}

// Create inserts a shop; ID and status are assigned by the database
func (r *shopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	query := `
		INSERT INTO shop (shop_name, location, type, shop_image, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING shop_id, status
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		shop.Name,
		nullable(shop.Location),
		nullable(shop.Type),
		nullable(shop.Image),
		shop.OwnerID,
	).Scan(&shop.ID, &shop.Status)

	if err != nil {
		if mapped := classifyWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create shop: %w", err)
	}

	return nil
}

// CreateOwner records the shop to owner link
func (r *shopRepository) CreateOwner(ctx context.Context, owner *domain.ShopOwner) error {
	query := `
		INSERT INTO shop_owner (shop_id, user_id)
		VALUES ($1, $2)
		RETURNING shop_owner_id
	`

	err := r.db.QueryRowContext(ctx, query, owner.ShopID, owner.UserID).Scan(&owner.ID)
	if err != nil {
		if mapped := classifyWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to create shop owner: %w", err)
	}

	return nil
}

// FindByID retrieves a shop by ID
func (r *shopRepository) FindByID(ctx context.Context, id int64) (*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shop WHERE shop_id = $1`

	shop, err := scanShop(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShopNotFound
		}
		return nil, fmt.Errorf("failed to find shop by ID: %w", err)
	}

	return shop, nil
}

// ListByOwner retrieves all shops owned by a user, oldest first
func (r *shopRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Shop, error) {
	query := `SELECT ` + shopColumns + ` FROM shop WHERE owner_id = $1 ORDER BY shop_id ASC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	defer rows.Close()

	shops := []*domain.Shop{}
	for rows.Next() {
		shop, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shop: %w", err)
		}
		shops = append(shops, shop)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shops: %w", err)
	}

	return shops, nil
}

// AddCustomer links a customer to a shop. Linking twice keeps the original timestamp.
func (r *shopRepository) AddCustomer(ctx context.Context, link *domain.ShopCustomer) error {
	query := `
		INSERT INTO shop_customer (shop_id, customer_id)
		VALUES ($1, $2)
		ON CONFLICT (shop_id, customer_id) DO UPDATE SET shop_id = EXCLUDED.shop_id
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query, link.ShopID, link.CustomerID).Scan(&link.CreatedAt)
	if err != nil {
		if mapped := classifyWriteError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to link customer to shop: %w", err)
	}

	return nil
}

// ListCustomers retrieves the customers linked to a shop
func (r *shopRepository) ListCustomers(ctx context.Context, shopID int64) ([]*domain.Customer, error) {
	query := `
		SELECT c.customer_id, c.mobile
		FROM shop_customer sc
		JOIN customer c ON c.customer_id = sc.customer_id
		WHERE sc.shop_id = $1
		ORDER BY sc.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shop customers: %w", err)
	}
	defer rows.Close()

	customers := []*domain.Customer{}
	for rows.Next() {
		customer := &domain.Customer{}
		if err := rows.Scan(&customer.ID, &customer.Mobile); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shop customers: %w", err)
	}

	return customers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanShop(row rowScanner) (*domain.Shop, error) {
	shop := &domain.Shop{}
	err := row.Scan(
		&shop.ID,
		&shop.Name,
		&shop.Location,
		&shop.Type,
		&shop.Status,
		&shop.Image,
		&shop.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	return shop, nil
}
