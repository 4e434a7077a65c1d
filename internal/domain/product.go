package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity an INTEGER column holds
const MaxQuantity = math.MaxInt32

// Product represents a product listed by a shop
type Product struct {
	ID        int64           `json:"productId" db:"product_id"`
	ShopID    int64           `json:"shopId" db:"shop_id"`
	Name      string          `json:"name" db:"name"`
	Price     decimal.Decimal `json:"price" db:"price"`
	Quantity  int             `json:"quantity" db:"quantity"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" db:"updated_at"`
}

// LineTotal returns price multiplied by quantity, the point-in-time amount
// stored on cart entries and orders.
func (p *Product) LineTotal(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}
