package service

import (
	"context"
	"sync"
	"time"

	"shopkeeper/internal/domain"
	"shopkeeper/internal/repository"

	"github.com/shopspring/decimal"
)

// Mock repositories for testing

type mockUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.ID]; exists {
		return repository.ErrUserAlreadyExists
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, exists := m.users[id]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

type mockShopRepository struct {
	mu        sync.Mutex
	nextID    int64
	shops     map[int64]*domain.Shop
	owners    []*domain.ShopOwner
	links     map[[2]int64]*domain.ShopCustomer
	customers *mockCustomerRepository
}

func newMockShopRepository(customers *mockCustomerRepository) *mockShopRepository {
	return &mockShopRepository{
		shops:     make(map[int64]*domain.Shop),
		links:     make(map[[2]int64]*domain.ShopCustomer),
		customers: customers,
	}
}

func (m *mockShopRepository) Create(ctx context.Context, shop *domain.Shop) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	shop.ID = m.nextID
	shop.Status = domain.ShopStatusActive
	copied := *shop
	m.shops[shop.ID] = &copied
	return nil
}

func (m *mockShopRepository) CreateOwner(ctx context.Context, owner *domain.ShopOwner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.shops[owner.ShopID]; !ok {
		return repository.ErrInvalidReference
	}
	owner.ID = int64(len(m.owners) + 1)
	m.owners = append(m.owners, owner)
	return nil
}

func (m *mockShopRepository) FindByID(ctx context.Context, id int64) (*domain.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	shop, ok := m.shops[id]
	if !ok {
		return nil, repository.ErrShopNotFound
	}
	copied := *shop
	return &copied, nil
}

func (m *mockShopRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	shops := []*domain.Shop{}
	for id := int64(1); id <= m.nextID; id++ {
		if shop, ok := m.shops[id]; ok && shop.OwnerID == ownerID {
			shops = append(shops, shop)
		}
	}
	return shops, nil
}

func (m *mockShopRepository) AddCustomer(ctx context.Context, link *domain.ShopCustomer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.shops[link.ShopID]; !ok {
		return repository.ErrInvalidReference
	}
	key := [2]int64{link.ShopID, link.CustomerID}
	if existing, ok := m.links[key]; ok {
		link.CreatedAt = existing.CreatedAt
		return nil
	}
	link.CreatedAt = time.Now()
	m.links[key] = link
	return nil
}

func (m *mockShopRepository) ListCustomers(ctx context.Context, shopID int64) ([]*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	customers := []*domain.Customer{}
	for key := range m.links {
		if key[0] != shopID {
			continue
		}
		if c, err := m.customers.FindByID(ctx, key[1]); err == nil {
			customers = append(customers, c)
		}
	}
	return customers, nil
}

type mockProductRepository struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]*domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[int64]*domain.Product)}
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	product.ID = m.nextID
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	m.products[product.ID] = product
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return product, nil
}

func (m *mockProductRepository) ListByShop(ctx context.Context, shopID int64) ([]*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	products := []*domain.Product{}
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.products[id]; ok && p.ShopID == shopID {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *mockProductRepository) CountByShop(ctx context.Context, shopID int64) (int, error) {
	products, _ := m.ListByShop(ctx, shopID)
	return len(products), nil
}

type mockCustomerRepository struct {
	mu        sync.Mutex
	nextID    int64
	customers map[int64]*domain.Customer
}

func newMockCustomerRepository() *mockCustomerRepository {
	return &mockCustomerRepository{customers: make(map[int64]*domain.Customer)}
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	customer.ID = m.nextID
	m.customers[customer.ID] = customer
	return nil
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	customer, ok := m.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	return customer, nil
}

type mockCartRepository struct {
	mu        sync.Mutex
	nextID    int64
	items     []*domain.CartItem
	products  *mockProductRepository
	deleteErr error
}

func newMockCartRepository(products *mockProductRepository) *mockCartRepository {
	return &mockCartRepository{products: products}
}

func (m *mockCartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if item.Quantity <= 0 {
		return repository.ErrConstraintViolation
	}
	m.nextID++
	item.ID = m.nextID
	m.items = append(m.items, item)
	return nil
}

func (m *mockCartRepository) SumSubtotals(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	items, _ := m.ListByCustomer(ctx, customerID)
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Subtotal)
	}
	return sum, nil
}

func (m *mockCartRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := []*domain.CartItem{}
	for _, item := range m.items {
		if item.CustomerID == customerID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *mockCartRepository) ListLines(ctx context.Context, customerID int64) ([]*domain.CartLine, error) {
	items, _ := m.ListByCustomer(ctx, customerID)
	lines := []*domain.CartLine{}
	for _, item := range items {
		product, err := m.products.FindByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		lines = append(lines, &domain.CartLine{
			CartID:    item.ID,
			ProductID: item.ProductID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal,
		})
	}
	return lines, nil
}

func (m *mockCartRepository) DeleteByCustomer(ctx context.Context, customerID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	kept := m.items[:0]
	var removed int64
	for _, item := range m.items {
		if item.CustomerID == customerID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	m.items = kept
	return removed, nil
}

type mockSaleRepository struct {
	mu     sync.Mutex
	nextID int64
	sales  []*domain.Sale
}

func newMockSaleRepository() *mockSaleRepository {
	return &mockSaleRepository{}
}

func (m *mockSaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	sale.ID = m.nextID
	sale.Date = time.Now()
	m.sales = append(m.sales, sale)
	return nil
}

func (m *mockSaleRepository) ListByShop(ctx context.Context, shopID int64) ([]*domain.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sales := []*domain.Sale{}
	for _, sale := range m.sales {
		if sale.ShopID == shopID {
			sales = append(sales, sale)
		}
	}
	return sales, nil
}

func (m *mockSaleRepository) CountByShop(ctx context.Context, shopID int64) (int, error) {
	sales, _ := m.ListByShop(ctx, shopID)
	return len(sales), nil
}

func (m *mockSaleRepository) SumTotalByShop(ctx context.Context, shopID int64) (decimal.Decimal, error) {
	sales, _ := m.ListByShop(ctx, shopID)
	sum := decimal.Zero
	for _, sale := range sales {
		sum = sum.Add(sale.TotalAmount)
	}
	return sum, nil
}

type mockOrderRepository struct {
	mu     sync.Mutex
	nextID int64
	orders []*domain.Order
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{}
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	order.ID = m.nextID
	order.Date = time.Now()
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepository) ListByShop(ctx context.Context, shopID int64, status string) ([]*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := []*domain.Order{}
	for _, order := range m.orders {
		if order.ShopID == shopID && (status == "" || order.Status == status) {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

type mockExpenseRepository struct {
	mu       sync.Mutex
	nextID   int64
	expenses []*domain.Expense
}

func newMockExpenseRepository() *mockExpenseRepository {
	return &mockExpenseRepository{}
}

func (m *mockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	expense.ID = m.nextID
	expense.Date = time.Now()
	m.expenses = append(m.expenses, expense)
	return nil
}

func (m *mockExpenseRepository) ListByShop(ctx context.Context, shopID int64) ([]*domain.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	expenses := []*domain.Expense{}
	for _, expense := range m.expenses {
		if expense.ShopID == shopID {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}
