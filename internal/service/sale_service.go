package service

import (
	"context"
	"fmt"

	"shopkeeper/internal/domain"
	"shopkeeper/internal/repository"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// SaleService defines the interface for checkout and sale queries
type SaleService interface {
	Checkout(ctx context.Context, customerID, shopID int64) (*domain.Sale, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Sale, error)
}

type saleService struct {
	saleRepo repository.SaleRepository
	cartRepo repository.CartRepository
}

// NewSaleService creates a new instance of SaleService
func NewSaleService(saleRepo repository.SaleRepository, cartRepo repository.CartRepository) SaleService {
	return &saleService{
		saleRepo: saleRepo,
		cartRepo: cartRepo,
	}
}

// Checkout converts the customer's whole cart into one sale and clears the cart.
// The total is recomputed from the cart subtotals, not taken from the stored running totals.
// The sale insert and the cart delete are separate statements: if the delete fails the
// sale stays recorded and the error is returned.
func (s *saleService) Checkout(ctx context.Context, customerID, shopID int64) (*domain.Sale, error) {
	if customerID <= 0 {
		return nil, ErrMissingCustomerID
	}
	if shopID <= 0 {
		return nil, ErrMissingShopID
	}

	items, err := s.cartRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	sale := &domain.Sale{
		ShopID:      shopID,
		CustomerID:  customerID,
		TotalAmount: sumSubtotals(items),
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	if _, err := s.cartRepo.DeleteByCustomer(ctx, customerID); err != nil {
		return nil, fmt.Errorf("sale %d recorded but cart was not cleared: %w", sale.ID, err)
	}

	return sale, nil
}

// ListByShop lists a shop's sales, newest first
func (s *saleService) ListByShop(ctx context.Context, shopID int64) ([]*domain.Sale, error) {
	if shopID <= 0 {
		return nil, ErrMissingShopID
	}

	sales, err := s.saleRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func sumSubtotals(items []*domain.CartItem) decimal.Decimal {
	return lo.Reduce(items, func(acc decimal.Decimal, item *domain.CartItem, _ int) decimal.Decimal {
		return acc.Add(item.Subtotal)
	}, decimal.Zero)
}
