package domain

import (
	"github.com/shopspring/decimal"
)

// Customer represents a buyer identified by mobile number
type Customer struct {
	ID     int64  `json:"customerId" db:"customer_id"`
	Mobile string `json:"mobile" db:"mobile"`
}

// CartItem is one line in a customer's cart.
// Subtotal is price × quantity at insertion time; Total is the running sum of
// the customer's cart subtotals at insertion time, including this line.
type CartItem struct {
	ID         int64           `json:"cartId" db:"cart_id"`
	CustomerID int64           `json:"customerId" db:"customer_id"`
	ProductID  int64           `json:"productId" db:"product_id"`
	Quantity   int             `json:"quantity" db:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal" db:"subtotal"`
	Total      decimal.Decimal `json:"total" db:"total"`
}

// CartLine is a cart item joined with its product name for display
type CartLine struct {
	CartID    int64           `json:"cartId"`
	ProductID int64           `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
