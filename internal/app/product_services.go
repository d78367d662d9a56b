package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"
)

// productService implements the ProductService interface. Reads go through the
// cache; cache failures are logged and never fail the request.
type productService struct {
	productRepository products.ProductRepository
	cache             products.ProductCache
	logger            logger.Logger
}

// NewProductService creates a new instance of ProductService
func NewProductService(productRepository products.ProductRepository, cache products.ProductCache, logger logger.Logger) (products.ProductService, error) {
	if productRepository == nil {
		return nil, fmt.Errorf("product service requires a product repository")
	}
	if cache == nil {
		return nil, fmt.Errorf("product service requires a product cache")
	}
	return &productService{
		productRepository: productRepository,
		cache:             cache,
		logger:            logger,
	}, nil
}

// List retrieves products matching the query. Only the unfiltered list is cached.
func (s *productService) List(ctx context.Context, query *products.ProductQuery) ([]*products.Product, error) {
	if query == nil {
		query = products.NewProductQuery()
	}

	if !query.IsDefault() {
		return s.productRepository.List(ctx, query)
	}

	if cached, found, err := s.cache.GetList(ctx); err != nil {
		s.logger.Warn("Product list cache read failed: ", err)
	} else if found {
		return cached, nil
	}

	list, err := s.productRepository.List(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, list); err != nil {
		s.logger.Warn("Product list cache write failed: ", err)
	}
	return list, nil
}

// GetByID retrieves a product by ID.
func (s *productService) GetByID(ctx context.Context, productID uint) (*products.Product, error) {
	if cached, found, err := s.cache.Get(ctx, productID); err != nil {
		s.logger.Warn("Product cache read failed: ", err)
	} else if found {
		return cached, nil
	}

	product, err := s.productRepository.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, product); err != nil {
		s.logger.Warn("Product cache write failed: ", err)
	}
	return product, nil
}

// Create validates and stores a new product owned by ownerID.
func (s *productService) Create(ctx context.Context, ownerID uint, product *products.Product) (*products.Product, error) {
	now := time.Now()
	product.ID = 0
	product.OwnerID = ownerID
	product.DateTimeCreated = now
	product.DateTimeUpdated = now

	if err := s.productRepository.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, product.ID)
	return product, nil
}

// Update applies a partial update and returns the stored product.
func (s *productService) Update(ctx context.Context, productID uint, update *products.ProductUpdate) (*products.Product, error) {
	product, err := s.productRepository.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	update.Apply(product)
	product.DateTimeUpdated = time.Now()

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := s.productRepository.UpdateByID(ctx, product); err != nil {
		return nil, err
	}

	s.invalidate(ctx, productID)
	return product, nil
}

// DeleteByID removes a product and every cart line referencing it.
func (s *productService) DeleteByID(ctx context.Context, productID uint) error {
	if err := s.productRepository.DeleteByID(ctx, productID); err != nil {
		return err
	}

	s.invalidate(ctx, productID)
	return nil
}

func (s *productService) invalidate(ctx context.Context, productID uint) {
	if err := s.cache.Invalidate(ctx, productID); err != nil {
		s.logger.Warn("Product cache invalidation failed: ", err)
	}
}
