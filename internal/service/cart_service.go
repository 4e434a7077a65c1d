package service

import (
	"context"
	"fmt"

	"shopkeeper/internal/domain"
	"shopkeeper/internal/repository"
)

// CartService defines the interface for cart operations
type CartService interface {
	AddToCart(ctx context.Context, customerID, productID int64, quantity int) (*domain.CartItem, error)
	GetCart(ctx context.Context, customerID int64) ([]*domain.CartLine, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new instance of CartService
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart prices the product at its current price and appends a new cart row.
// The row's total is the customer's cart sum read just before the insert plus this subtotal;
// concurrent adds for the same customer may each miss the other's row.
func (s *cartService) AddToCart(ctx context.Context, customerID, productID int64, quantity int) (*domain.CartItem, error) {
	if customerID <= 0 {
		return nil, ErrMissingCustomerID
	}
	if productID <= 0 {
		return nil, ErrMissingProductID
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if quantity > domain.MaxQuantity {
		return nil, ErrQuantityTooLarge
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	subtotal := product.LineTotal(quantity)

	current, err := s.cartRepo.SumSubtotals(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart total: %w", err)
	}

	item := &domain.CartItem{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
		Subtotal:   subtotal,
		Total:      current.Add(subtotal),
	}

	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	return item, nil
}

// GetCart lists the customer's cart lines with product names
func (s *cartService) GetCart(ctx context.Context, customerID int64) ([]*domain.CartLine, error) {
	if customerID <= 0 {
		return nil, ErrMissingCustomerID
	}

	lines, err := s.cartRepo.ListLines(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return lines, nil
}
