package service

import (
	"context"
	"fmt"

	"shopkeeper/internal/domain"
	"shopkeeper/internal/repository"
)

// OrderService defines the interface for order operations
type OrderService interface {
	CreateOrder(ctx context.Context, shopID, productID int64, quantity int) (*domain.Order, error)
	ListByShop(ctx context.Context, shopID int64, status string) ([]*domain.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// CreateOrder records a pending order priced at the product's current price
func (s *orderService) CreateOrder(ctx context.Context, shopID, productID int64, quantity int) (*domain.Order, error) {
	switch {
	case shopID <= 0:
		return nil, ErrMissingShopID
	case productID <= 0:
		return nil, ErrMissingProductID
	case quantity <= 0:
		return nil, ErrInvalidQuantity
	case quantity > domain.MaxQuantity:
		return nil, ErrQuantityTooLarge
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	order := &domain.Order{
		ShopID:      shopID,
		ProductID:   productID,
		Quantity:    quantity,
		TotalAmount: product.LineTotal(quantity),
		Status:      domain.OrderStatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}

// ListByShop lists a shop's orders; an empty status matches all
func (s *orderService) ListByShop(ctx context.Context, shopID int64, status string) ([]*domain.Order, error) {
	if shopID <= 0 {
		return nil, ErrMissingShopID
	}
	if status != "" && !domain.IsValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	orders, err := s.orderRepo.ListByShop(ctx, shopID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
