package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"shopkeeper/internal/domain"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerRepository defines the interface for customer data access
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
}

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new instance of CustomerRepository
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `INSERT INTO customer (mobile) VALUES ($1) RETURNING customer_id`

	if err := r.db.QueryRowContext(ctx, query, customer.Mobile).Scan(&customer.ID); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `SELECT customer_id, mobile FROM customer WHERE customer_id = $1`

	customer := &domain.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&customer.ID, &customer.Mobile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID: %w", err)
	}

	return customer, nil
}
