package models

import (
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
)

// CartItemModel is the GORM database model for cart lines.
// A user holds at most one line per product.
type CartItemModel struct {
	ID              uint         `gorm:"primaryKey;autoIncrement"`
	UserID          uint         `gorm:"not null;uniqueIndex:idx_cart_items_user_product"`
	ProductID       uint         `gorm:"not null;uniqueIndex:idx_cart_items_user_product;index"`
	Quantity        int          `gorm:"not null"`
	Product         ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	DateTimeCreated time.Time    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (CartItemModel) TableName() string {
	return "cart_items"
}

// ToDomain converts GORM model to domain entity. The product is attached when it was preloaded.
func (m *CartItemModel) ToDomain() *carts.CartItem {
	item := &carts.CartItem{
		ID:              m.ID,
		UserID:          m.UserID,
		ProductID:       m.ProductID,
		Quantity:        m.Quantity,
		DateTimeCreated: m.DateTimeCreated,
	}
	if m.Product.ID != 0 {
		item.Product = m.Product.ToDomain()
	}
	return item
}

// FromDomain converts domain entity to GORM model. The product association is not copied.
func (m *CartItemModel) FromDomain(i *carts.CartItem) {
	m.ID = i.ID
	m.UserID = i.UserID
	m.ProductID = i.ProductID
	m.Quantity = i.Quantity
	m.DateTimeCreated = i.DateTimeCreated
}
