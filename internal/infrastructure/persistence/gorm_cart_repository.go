package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/persistence/models"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCartRepository struct {
	sessions *SessionFactory
	logger   logger.Logger
}

// NewGormCartRepository creates a new GORM-based CartRepository implementation
func NewGormCartRepository(sessions *SessionFactory, logger logger.Logger) (carts.CartRepository, error) {
	if sessions == nil {
		return nil, fmt.Errorf("cart repository requires a session factory")
	}
	return &gormCartRepository{
		sessions: sessions,
		logger:   logger,
	}, nil
}

func (r *gormCartRepository) ListByUser(ctx context.Context, userID uint) ([]*carts.CartItem, error) {
	var modelList []*models.CartItemModel
	err := r.sessions.Engine().WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}

	items := make([]*carts.CartItem, len(modelList))
	for i, model := range modelList {
		items[i] = model.ToDomain()
	}
	return items, nil
}

// AddOrIncrement checks the product and upserts the user's line for it in one session
func (r *gormCartRepository) AddOrIncrement(ctx context.Context, userID, productID uint, quantity int) (*carts.CartItem, error) {
	var itemID uint

	err := r.sessions.Transaction(ctx, func(tx *gorm.DB) error {
		var product models.ProductModel
		if err := tx.Where("id = ?", productID).First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return products.ErrProductNotFound
			}
			return fmt.Errorf("failed to fetch product: %w", err)
		}

		var model models.CartItemModel
		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&model).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			model = models.CartItemModel{
				UserID:          userID,
				ProductID:       productID,
				Quantity:        quantity,
				DateTimeCreated: time.Now(),
			}
		case err != nil:
			return fmt.Errorf("failed to fetch cart item: %w", err)
		default:
			model.Quantity += quantity
		}

		if err := model.ToDomain().Validate(); err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		if err := tx.Omit("Product").Save(&model).Error; err != nil {
			return fmt.Errorf("failed to save cart item: %w", err)
		}

		itemID = model.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Saved cart item with id ", itemID)
	return r.GetByID(ctx, userID, itemID)
}

func (r *gormCartRepository) GetByID(ctx context.Context, userID, itemID uint) (*carts.CartItem, error) {
	var model models.CartItemModel
	err := r.sessions.Engine().WithContext(ctx).
		Preload("Product").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, carts.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch cart item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCartRepository) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) (*carts.CartItem, error) {
	err := r.sessions.Transaction(ctx, func(tx *gorm.DB) error {
		var model models.CartItemModel
		if err := tx.Where("id = ? AND user_id = ?", itemID, userID).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return carts.ErrCartItemNotFound
			}
			return fmt.Errorf("failed to fetch cart item: %w", err)
		}

		model.Quantity = quantity
		if err := model.ToDomain().Validate(); err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		if err := tx.Model(&model).Update("quantity", quantity).Error; err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("Updated cart item with id ", itemID)
	return r.GetByID(ctx, userID, itemID)
}

func (r *gormCartRepository) DeleteByID(ctx context.Context, userID, itemID uint) error {
	result := r.sessions.Engine().WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return carts.ErrCartItemNotFound
	}

	r.logger.Info("Deleted cart item with id ", itemID)
	return nil
}
