package products

import (
	"context"
)

// ProductService defines catalog operations.
type ProductService interface {
	// List retrieves products matching the query.
	List(ctx context.Context, query *ProductQuery) ([]*Product, error)

	// GetByID retrieves a product by ID.
	// It returns ErrProductNotFound when the product does not exist.
	GetByID(ctx context.Context, productID uint) (*Product, error)

	// Create validates and stores a new product owned by ownerID.
	Create(ctx context.Context, ownerID uint, product *Product) (*Product, error)

	// Update applies a partial update and returns the stored product.
	Update(ctx context.Context, productID uint, update *ProductUpdate) (*Product, error)

	// DeleteByID removes a product and every cart line referencing it.
	DeleteByID(ctx context.Context, productID uint) error
}

// ProductRepository defines the interface for Product-related operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	List(ctx context.Context, query *ProductQuery) ([]*Product, error)
	GetByID(ctx context.Context, productID uint) (*Product, error)
	UpdateByID(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, productID uint) error
}

// ProductCache is a read-through cache in front of the product repository.
// A miss is reported as (nil, false, nil).
type ProductCache interface {
	Get(ctx context.Context, productID uint) (*Product, bool, error)
	Set(ctx context.Context, product *Product) error
	GetList(ctx context.Context) ([]*Product, bool, error)
	SetList(ctx context.Context, products []*Product) error
	Invalidate(ctx context.Context, productID uint) error
}
