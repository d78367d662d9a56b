package carts

import (
	"errors"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/pkg/validators"
)

// ErrCartItemNotFound is returned when the item does not exist or belongs to another user
var ErrCartItemNotFound = errors.New("cart item not found")

// CartItem is one product line in a user's cart
type CartItem struct {
	ID              uint
	UserID          uint `validate:"required"`
	ProductID       uint `validate:"required"`
	Quantity        int  `validate:"min=1,max=1000"`
	Product         *products.Product
	DateTimeCreated time.Time
}

// Validate for validating CartItem struct
func (i *CartItem) Validate() error {
	return validators.Struct(i)
}

// Subtotal is the line price, zero when the product is not loaded
func (i *CartItem) Subtotal() float64 {
	if i.Product == nil {
		return 0
	}
	return i.Product.Price * float64(i.Quantity)
}

// Cart is the set of items owned by one user
type Cart struct {
	UserID uint
	Items  []*CartItem
}

// Total sums every line subtotal
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

// ItemCount sums the quantities of every line
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
