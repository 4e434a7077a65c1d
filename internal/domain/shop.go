package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShopStatusActive is the status assigned to newly created shops
const ShopStatusActive = "active"

// User represents a shop owner account. The ID is issued by an external identity provider.
type User struct {
	ID        string    `json:"userId" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Shop represents a storefront owned by a user
type Shop struct {
	ID       int64  `json:"shopId" db:"shop_id"`
	Name     string `json:"shopName" db:"shop_name"`
	Location string `json:"location" db:"location"`
	Type     string `json:"type" db:"type"`
	Status   string `json:"status" db:"status"`
	Image    string `json:"shopImage" db:"shop_image"`
	OwnerID  string `json:"ownerId" db:"owner_id"`
}

// ShopOwner links a shop to the user that owns it
type ShopOwner struct {
	ID     int64  `json:"shopOwnerId" db:"shop_owner_id"`
	ShopID int64  `json:"shopId" db:"shop_id"`
	UserID string `json:"userId" db:"user_id"`
}

// ShopCustomer links a customer to a shop they have bought from
type ShopCustomer struct {
	ShopID     int64     `json:"shopId" db:"shop_id"`
	CustomerID int64     `json:"customerId" db:"customer_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// ShopStats holds aggregates computed over a shop's products and sales
type ShopStats struct {
	ProductCount int             `json:"productCount"`
	SaleCount    int             `json:"saleCount"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// ShopDetails is a shop merged with its stats and product list
type ShopDetails struct {
	Shop
	Stats    ShopStats  `json:"stats"`
	Products []*Product `json:"products"`
}
