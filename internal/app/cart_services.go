package app

import (
	"context"
	"fmt"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"
	"github.com/Mumbi286/DukaYetu/internal/pkg/validators"
)

// Quantity bounds of a single cart line
const (
	MinCartQuantity = 1
	MaxCartQuantity = 1000
)

// cartService implements the CartService interface
type cartService struct {
	cartRepository carts.CartRepository
	logger         logger.Logger
}

// NewCartService creates a new instance of CartService
func NewCartService(cartRepository carts.CartRepository, logger logger.Logger) (carts.CartService, error) {
	if cartRepository == nil {
		return nil, fmt.Errorf("cart service requires a cart repository")
	}
	return &cartService{
		cartRepository: cartRepository,
		logger:         logger,
	}, nil
}

// GetCart returns every line of the user's cart with product details.
func (s *cartService) GetCart(ctx context.Context, userID uint) (*carts.Cart, error) {
	items, err := s.cartRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &carts.Cart{UserID: userID, Items: items}, nil
}

// AddItem adds quantity of a product, increasing the existing line if there is one.
func (s *cartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*carts.CartItem, error) {
	if err := checkQuantity(quantity); err != nil {
		return nil, err
	}
	return s.cartRepository.AddOrIncrement(ctx, userID, productID, quantity)
}

// UpdateItem sets the quantity of one of the user's lines.
func (s *cartService) UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*carts.CartItem, error) {
	if err := checkQuantity(quantity); err != nil {
		return nil, err
	}
	return s.cartRepository.UpdateQuantity(ctx, userID, itemID, quantity)
}

// RemoveItem deletes one of the user's lines.
func (s *cartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	return s.cartRepository.DeleteByID(ctx, userID, itemID)
}

func checkQuantity(quantity int) error {
	if quantity < MinCartQuantity || quantity > MaxCartQuantity {
		return fmt.Errorf("%w: quantity must be between %d and %d", validators.ErrValidation, MinCartQuantity, MaxCartQuantity)
	}
	return nil
}
