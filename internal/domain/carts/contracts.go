package carts

import (
	"context"
)

// CartService defines the operations on the authenticated user's cart.
type CartService interface {
	// GetCart returns every line of the user's cart with product details.
	GetCart(ctx context.Context, userID uint) (*Cart, error)

	// AddItem adds quantity of a product, increasing the existing line if there is one.
	// It returns products.ErrProductNotFound for an unknown product.
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*CartItem, error)

	// UpdateItem sets the quantity of one of the user's lines.
	UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*CartItem, error)

	// RemoveItem deletes one of the user's lines.
	RemoveItem(ctx context.Context, userID, itemID uint) error
}

// CartRepository defines the interface for CartItem-related operations.
// Every lookup is scoped to the owning user.
type CartRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]*CartItem, error)
	AddOrIncrement(ctx context.Context, userID, productID uint, quantity int) (*CartItem, error)
	GetByID(ctx context.Context, userID, itemID uint) (*CartItem, error)
	UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*CartItem, error)
	DeleteByID(ctx context.Context, userID, itemID uint) error
}
