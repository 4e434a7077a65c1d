package service

import (
	"context"
	"fmt"
	"strings"

	"shopkeeper/internal/domain"
	"shopkeeper/internal/repository"

	"golang.org/x/sync/errgroup"
)

// CreateShopInput carries the fields accepted when opening a shop
type CreateShopInput struct {
	Name     string
	Location string
	Type     string
	Image    string
	OwnerID  string
}

// ShopService defines the interface for shop operations
type ShopService interface {
	CreateShop(ctx context.Context, input CreateShopInput) (*domain.Shop, *domain.ShopOwner, error)
	GetShopByOwner(ctx context.Context, ownerID string) (*domain.Shop, error)
	ListShopsByOwner(ctx context.Context, ownerID string) ([]*domain.Shop, error)
	GetShopDetails(ctx context.Context, shopID int64) (*domain.ShopDetails, error)
	AddCustomer(ctx context.Context, shopID, customerID int64) (*domain.ShopCustomer, error)
	ListCustomers(ctx context.Context, shopID int64) ([]*domain.Customer, error)
}

type shopService struct {
	shopRepo    repository.ShopRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewShopService creates a new instance of ShopService
func NewShopService(
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) ShopService {
	return &shopService{
		shopRepo:    shopRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// CreateShop inserts the shop and then the owner link
func (s *shopService) CreateShop(ctx context.Context, input CreateShopInput) (*domain.Shop, *domain.ShopOwner, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, nil, ErrMissingShopName
	}
	if input.OwnerID == "" {
		return nil, nil, ErrMissingOwnerID
	}

	shop := &domain.Shop{
		Name:     input.Name,
		Location: input.Location,
		Type:     input.Type,
		Image:    input.Image,
		OwnerID:  input.OwnerID,
	}

	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, nil, fmt.Errorf("failed to create shop: %w", err)
	}

	owner := &domain.ShopOwner{
		ShopID: shop.ID,
		UserID: input.OwnerID,
	}

	if err := s.shopRepo.CreateOwner(ctx, owner); err != nil {
		return nil, nil, fmt.Errorf("failed to link shop owner: %w", err)
	}

	return shop, owner, nil
}

// GetShopByOwner returns the first shop opened by the owner
func (s *shopService) GetShopByOwner(ctx context.Context, ownerID string) (*domain.Shop, error) {
	shops, err := s.ListShopsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(shops) == 0 {
		return nil, repository.ErrShopNotFound
	}
	return shops[0], nil
}

func (s *shopService) ListShopsByOwner(ctx context.Context, ownerID string) ([]*domain.Shop, error) {
	if ownerID == "" {
		return nil, ErrMissingOwnerID
	}

	shops, err := s.shopRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return shops, nil
}

// GetShopDetails merges the shop with fresh product and sale aggregates.
// The aggregates are independent reads and run concurrently.
func (s *shopService) GetShopDetails(ctx context.Context, shopID int64) (*domain.ShopDetails, error) {
	if shopID <= 0 {
		return nil, ErrMissingShopID
	}

	shop, err := s.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to find shop: %w", err)
	}

	details := &domain.ShopDetails{Shop: *shop}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.productRepo.CountByShop(gctx, shopID)
		details.Stats.ProductCount = count
		return err
	})
	g.Go(func() error {
		count, err := s.saleRepo.CountByShop(gctx, shopID)
		details.Stats.SaleCount = count
		return err
	})
	g.Go(func() error {
		revenue, err := s.saleRepo.SumTotalByShop(gctx, shopID)
		details.Stats.TotalRevenue = revenue
		return err
	})
	g.Go(func() error {
		products, err := s.productRepo.ListByShop(gctx, shopID)
		details.Products = products
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate shop details: %w", err)
	}

	return details, nil
}

// AddCustomer links a customer to a shop
func (s *shopService) AddCustomer(ctx context.Context, shopID, customerID int64) (*domain.ShopCustomer, error) {
	if shopID <= 0 {
		return nil, ErrMissingShopID
	}
	if customerID <= 0 {
		return nil, ErrMissingCustomerID
	}

	link := &domain.ShopCustomer{
		ShopID:     shopID,
		CustomerID: customerID,
	}

	if err := s.shopRepo.AddCustomer(ctx, link); err != nil {
		return nil, fmt.Errorf("failed to add shop customer: %w", err)
	}

	return link, nil
}

// ListCustomers lists the customers linked to an existing shop
func (s *shopService) ListCustomers(ctx context.Context, shopID int64) ([]*domain.Customer, error) {
	if shopID <= 0 {
		return nil, ErrMissingShopID
	}

	if _, err := s.shopRepo.FindByID(ctx, shopID); err != nil {
		return nil, fmt.Errorf("failed to find shop: %w", err)
	}

	customers, err := s.shopRepo.ListCustomers(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shop customers: %w", err)
	}
	return customers, nil
}
