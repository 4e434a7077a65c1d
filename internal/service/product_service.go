package service

import (
	"context"
	"fmt"
	"strings"

	"shopkeeper/internal/domain"
	"shopkeeper/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService defines the interface for product operations
type ProductService interface {
	CreateProduct(ctx context.Context, shopID int64, name string, price decimal.Decimal, quantity int) (*domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(ctx context.Context, shopID int64, name string, price decimal.Decimal, quantity int) (*domain.Product, error) {
	name = strings.TrimSpace(name)
	switch {
	case shopID <= 0:
		return nil, ErrMissingShopID
	case name == "":
		return nil, ErrMissingName
	case price.IsNegative():
		return nil, ErrNegativePrice
	case quantity < 0:
		return nil, ErrNegativeQuantity
	case quantity > domain.MaxQuantity:
		return nil, ErrQuantityTooLarge
	}

	product := &domain.Product{
		ShopID:   shopID,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	if productID <= 0 {
		return nil, ErrMissingProductID
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *productService) ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error) {
	if shopID <= 0 {
		return nil, ErrMissingShopID
	}

	products, err := s.productRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
