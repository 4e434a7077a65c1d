package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Sale records a completed checkout. Sales are append-only.
type Sale struct {
	ID          int64           `json:"sellId" db:"sell_id"`
	ShopID      int64           `json:"shopId" db:"shop_id"`
	CustomerID  int64           `json:"customerId" db:"customer_id"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Date        time.Time       `json:"dateOfSale" db:"date_of_sale"`
}

// Order records a shop's order of a product. Orders are append-only.
type Order struct {
	ID          int64           `json:"orderId" db:"order_id"`
	ShopID      int64           `json:"shopId" db:"shop_id"`
	ProductID   int64           `json:"productId" db:"product_id"`
	Quantity    int             `json:"quantity" db:"quantity"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Date        time.Time       `json:"orderDate" db:"order_date"`
	Status      string          `json:"status" db:"status"`
}

// Expense records money spent by a shop
type Expense struct {
	ID          int64           `json:"expenseId" db:"expense_id"`
	ShopID      int64           `json:"shopId" db:"shop_id"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	Date        time.Time       `json:"expenseDate" db:"expense_date"`
}

// IsValidOrderStatus reports whether status is one of the known order statuses
func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
