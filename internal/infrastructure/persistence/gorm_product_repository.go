package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/persistence/models"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProductRepository struct {
	sessions *SessionFactory
	logger   logger.Logger
}

// NewGormProductRepository creates a new GORM-based ProductRepository implementation
func NewGormProductRepository(sessions *SessionFactory, logger logger.Logger) (products.ProductRepository, error) {
	if sessions == nil {
		return nil, fmt.Errorf("product repository requires a session factory")
	}
	return &gormProductRepository{
		sessions: sessions,
		logger:   logger,
	}, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *products.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	if err := r.sessions.Engine().WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	product.ID = model.ID
	r.logger.Info("Created product with id ", product.ID)
	return nil
}

func (r *gormProductRepository) List(ctx context.Context, query *products.ProductQuery) ([]*products.Product, error) {
	if query == nil {
		query = products.NewProductQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ProductModel
	dbQuery := r.sessions.Engine().WithContext(ctx).Model(&models.ProductModel{})

	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "id"
	}
	order := query.SortOrder
	if order == "" {
		order = "asc"
	}
	dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", sortBy, order))

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	domainList := make([]*products.Product, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, productID uint) (*products.Product, error) {
	var model models.ProductModel
	if err := r.sessions.Engine().WithContext(ctx).Where("id = ?", productID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, products.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) UpdateByID(ctx context.Context, product *products.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	result := r.sessions.Engine().WithContext(ctx).
		Model(&models.ProductModel{ID: product.ID}).
		Select("*").
		Omit("id", "date_time_created").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return products.ErrProductNotFound
	}

	r.logger.Info("Updated product with id ", product.ID)
	return nil
}

// DeleteByID removes the product and its cart lines in one session. The cart
// lines are flushed before the product delete. The explicit cart delete also
// covers SQLite, which ignores foreign keys unless enabled.
func (r *gormProductRepository) DeleteByID(ctx context.Context, productID uint) error {
	session, err := r.sessions.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Rollback(); err != nil {
			r.logger.Warn("Failed to roll back product deletion: ", err)
		}
	}()

	if err := session.DB().Where("product_id = ?", productID).Delete(&models.CartItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete cart items of product: %w", err)
	}
	if err := session.Flush(); err != nil {
		return err
	}

	result := session.DB().Where("id = ?", productID).Delete(&models.ProductModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return products.ErrProductNotFound
	}

	if err := session.Commit(); err != nil {
		return err
	}

	r.logger.Info("Deleted product with id ", productID)
	return nil
}
