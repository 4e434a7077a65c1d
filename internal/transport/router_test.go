package transport

import (
	"context"
	"sync"
	"testing"

	"shopkeeper/internal/domain"
	"shopkeeper/internal/repository"
	"shopkeeper/internal/service"
	"shopkeeper/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gocloud.dev/blob/memblob"
)

const testMaxUpload = 5 << 20

// memoryStore backs every repository used by the handler tests
type memoryStore struct {
	mu       sync.Mutex
	shops    map[int64]*domain.Shop
	products map[int64]*domain.Product
	carts    []*domain.CartItem
	sales    []*domain.Sale
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		shops:    make(map[int64]*domain.Shop),
		products: make(map[int64]*domain.Product),
	}
}

type shopRepo struct{ *memoryStore }

func (s shopRepo) Create(ctx context.Context, shop *domain.Shop) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	shop.ID = int64(len(s.shops) + 1)
	shop.Status = domain.ShopStatusActive
	s.shops[shop.ID] = shop
	return nil
}

func (s shopRepo) CreateOwner(ctx context.Context, owner *domain.ShopOwner) error {
	owner.ID = owner.ShopID
	return nil
}

func (s shopRepo) FindByID(ctx context.Context, id int64) (*domain.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shop, ok := s.shops[id]
	if !ok {
		return nil, repository.ErrShopNotFound
	}
	return shop, nil
}

func (s shopRepo) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shops := []*domain.Shop{}
	for id := int64(1); id <= int64(len(s.shops)); id++ {
		if s.shops[id].OwnerID == ownerID {
			shops = append(shops, s.shops[id])
		}
	}
	return shops, nil
}

func (s shopRepo) AddCustomer(ctx context.Context, link *domain.ShopCustomer) error {
	return nil
}

func (s shopRepo) ListCustomers(ctx context.Context, shopID int64) ([]*domain.Customer, error) {
	return []*domain.Customer{}, nil
}

type productRepo struct{ *memoryStore }

func (s productRepo) Create(ctx context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shops[product.ShopID]; !ok {
		return repository.ErrInvalidReference
	}
	product.ID = int64(len(s.products) + 1)
	s.products[product.ID] = product
	return nil
}

func (s productRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (s productRepo) ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := []*domain.Product{}
	for id := int64(1); id <= int64(len(s.products)); id++ {
		if s.products[id].ShopID == shopID {
			products = append(products, s.products[id])
		}
	}
	return products, nil
}

func (s productRepo) CountByShop(ctx context.Context, shopID int64) (int, error) {
	products, err := s.ListByShop(ctx, shopID)
	return len(products), err
}

type cartRepo struct{ *memoryStore }

func (s cartRepo) Create(ctx context.Context, item *domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = int64(len(s.carts) + 1)
	s.carts = append(s.carts, item)
	return nil
}

func (s cartRepo) SumSubtotals(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	items, _ := s.ListByCustomer(ctx, customerID)
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal)
	}
	return sum, nil
}

func (s cartRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := []*domain.CartItem{}
	for _, item := range s.carts {
		if item.CustomerID == customerID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s cartRepo) ListLines(ctx context.Context, customerID int64) ([]*domain.CartLine, error) {
	items, _ := s.ListByCustomer(ctx, customerID)
	lines := []*domain.CartLine{}
	for _, item := range items {
		lines = append(lines, &domain.CartLine{
			CartID:    item.ID,
			ProductID: item.ProductID,
			Name:      s.products[item.ProductID].Name,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}
	return lines, nil
}

func (s cartRepo) DeleteByCustomer(ctx context.Context, customerID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := []*domain.CartItem{}
	for _, item := range s.carts {
		if item.CustomerID != customerID {
			kept = append(kept, item)
		}
	}
	removed := int64(len(s.carts) - len(kept))
	s.carts = kept
	return removed, nil
}

type saleRepo struct{ *memoryStore }

func (s saleRepo) Create(ctx context.Context, sale *domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sale.ID = int64(len(s.sales) + 1)
	s.sales = append(s.sales, sale)
	return nil
}

func (s saleRepo) ListByShop(ctx context.Context, shopID int64) ([]*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sales := []*domain.Sale{}
	for _, sale := range s.sales {
		if sale.ShopID == shopID {
			sales = append(sales, sale)
		}
	}
	return sales, nil
}

func (s saleRepo) CountByShop(ctx context.Context, shopID int64) (int, error) {
	sales, err := s.ListByShop(ctx, shopID)
	return len(sales), err
}

func (s saleRepo) SumTotalByShop(ctx context.Context, shopID int64) (decimal.Decimal, error) {
	sales, _ := s.ListByShop(ctx, shopID)
	sum := decimal.Zero
	for _, sale := range sales {
		sum = sum.Add(sale.TotalAmount)
	}
	return sum, nil
}

type testApp struct {
	store  *memoryStore
	images *storage.ImageStore
	router chi.Router
}

// newTestApp wires real services over the in-memory store and a memory blob bucket
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	store := newMemoryStore()
	images := storage.NewImageStore(memblob.OpenBucket(nil), testMaxUpload, "/uploads")
	t.Cleanup(func() { images.Close() })

	logger := zap.NewNop()

	shopService := service.NewShopService(shopRepo{store}, productRepo{store}, saleRepo{store})
	productService := service.NewProductService(productRepo{store})
	cartService := service.NewCartService(cartRepo{store}, productRepo{store})
	saleService := service.NewSaleService(saleRepo{store}, cartRepo{store})

	router := chi.NewRouter()
	NewShopHandler(shopService, images, logger).RegisterRoutes(router)
	NewProductHandler(productService, logger).RegisterRoutes(router)
	NewCartHandler(cartService, logger).RegisterRoutes(router)
	NewSaleHandler(saleService, logger).RegisterRoutes(router)
	NewUploadHandler(images, "/uploads", logger).RegisterRoutes(router)

	return &testApp{store: store, images: images, router: router}
}

func (a *testApp) seedShop(t *testing.T) *domain.Shop {
	t.Helper()
	shop := &domain.Shop{Name: "Corner Store", OwnerID: "owner-1"}
	if err := (shopRepo{a.store}).Create(context.Background(), shop); err != nil {
		t.Fatalf("Failed to seed shop: %v", err)
	}
	return shop
}

func (a *testApp) seedProduct(t *testing.T, shopID int64, price string) *domain.Product {
	t.Helper()
	product := &domain.Product{ShopID: shopID, Name: "Tea", Price: decimal.RequireFromString(price), Quantity: 10}
	if err := (productRepo{a.store}).Create(context.Background(), product); err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return product
}
