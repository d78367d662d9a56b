//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/pkg/testutil"
	"github.com/Mumbi286/DukaYetu/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) (*MockProductRepository, *MockProductCache, products.ProductService) {
	t.Helper()

	log, _ := testutil.NewBufferLogger(t)
	repo := &MockProductRepository{}
	cache := &MockProductCache{}

	service, err := NewProductService(repo, cache, log)
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})
	return repo, cache, service
}

func TestProductService_List_CacheHit(t *testing.T) {
	_, cache, service := newProductFixture(t)
	ctx := context.Background()

	cached := []*products.Product{{ID: 1, Name: "Jiko"}}
	cache.On("GetList", ctx).Return(cached, true, nil)

	list, err := service.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, cached, list)
}

func TestProductService_List_CacheMissFillsCache(t *testing.T) {
	repo, cache, service := newProductFixture(t)
	ctx := context.Background()

	stored := []*products.Product{{ID: 1, Name: "Jiko"}}
	cache.On("GetList", ctx).Return(nil, false, nil)
	repo.On("List", ctx, products.NewProductQuery()).Return(stored, nil)
	cache.On("SetList", ctx, stored).Return(nil)

	list, err := service.List(ctx, products.NewProductQuery())
	require.NoError(t, err)
	assert.Equal(t, stored, list)
}

func TestProductService_List_CacheErrorsAreIgnored(t *testing.T) {
	repo, cache, service := newProductFixture(t)
	ctx := context.Background()

	stored := []*products.Product{{ID: 1}}
	cache.On("GetList", ctx).Return(nil, false, errors.New("redis down"))
	repo.On("List", ctx, mock.Anything).Return(stored, nil)
	cache.On("SetList", ctx, stored).Return(errors.New("redis down"))

	list, err := service.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProductService_List_FilteredBypassesCache(t *testing.T) {
	repo, _, service := newProductFixture(t)
	ctx := context.Background()

	query := &products.ProductQuery{Search: "jiko"}
	repo.On("List", ctx, query).Return([]*products.Product{}, nil)

	list, err := service.List(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductService_GetByID(t *testing.T) {
	repo, cache, service := newProductFixture(t)
	ctx := context.Background()

	product := &products.Product{ID: 4, Name: "Kanga"}
	cache.On("Get", ctx, uint(4)).Return(nil, false, nil)
	repo.On("GetByID", ctx, uint(4)).Return(product, nil)
	cache.On("Set", ctx, product).Return(nil)

	fetched, err := service.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, product, fetched)
}

func TestProductService_GetByID_NotFound(t *testing.T) {
	repo, cache, service := newProductFixture(t)
	ctx := context.Background()

	cache.On("Get", ctx, uint(9)).Return(nil, false, nil)
	repo.On("GetByID", ctx, uint(9)).Return(nil, products.ErrProductNotFound)

	_, err := service.GetByID(ctx, 9)
	assert.ErrorIs(t, err, products.ErrProductNotFound)
}

func TestProductService_Create(t *testing.T) {
	repo, cache, service := newProductFixture(t)
	ctx := context.Background()

	product := &products.Product{ID: 77, Name: "Kikapu", Price: 300}
	repo.On("Create", ctx, product).Run(func(args mock.Arguments) {
		args.Get(1).(*products.Product).ID = 8
	}).Return(nil)
	cache.On("Invalidate", ctx, uint(8)).Return(nil)

	created, err := service.Create(ctx, 2, product)
	require.NoError(t, err)
	assert.Equal(t, uint(8), created.ID)
	assert.Equal(t, uint(2), created.OwnerID)
	assert.False(t, created.DateTimeCreated.IsZero())
}

func TestProductService_Update(t *testing.T) {
	repo, cache, service := newProductFixture(t)
	ctx := context.Background()

	stored := &products.Product{ID: 4, Name: "Old", Price: 100, Stock: 3, DateTimeCreated: time.Now()}
	name := "New"
	stock := 0

	repo.On("GetByID", ctx, uint(4)).Return(stored, nil)
	repo.On("UpdateByID", ctx, mock.MatchedBy(func(p *products.Product) bool {
		return p.Name == "New" && p.Stock == 0 && p.Price == 100
	})).Return(nil)
	cache.On("Invalidate", ctx, uint(4)).Return(nil)

	updated, err := service.Update(ctx, 4, &products.ProductUpdate{Name: &name, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo, _, service := newProductFixture(t)
	ctx := context.Background()

	repo.On("GetByID", ctx, uint(4)).Return(nil, products.ErrProductNotFound)

	_, err := service.Update(ctx, 4, &products.ProductUpdate{})
	assert.ErrorIs(t, err, products.ErrProductNotFound)
}

func TestProductService_Update_InvalidPrice(t *testing.T) {
	repo, cache, service := newProductFixture(t)
	ctx := context.Background()

	stored := &products.Product{ID: 4, Name: "Old", Price: 100, Stock: 3, DateTimeCreated: time.Now()}
	price := 0.0

	repo.On("GetByID", ctx, uint(4)).Return(stored, nil)

	_, err := service.Update(ctx, 4, &products.ProductUpdate{Price: &price})
	assert.ErrorIs(t, err, validators.ErrValidation)
	repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestProductService_DeleteByID(t *testing.T) {
	repo, cache, service := newProductFixture(t)
	ctx := context.Background()

	repo.On("DeleteByID", ctx, uint(4)).Return(nil)
	cache.On("Invalidate", ctx, uint(4)).Return(errors.New("redis down"))

	assert.NoError(t, service.DeleteByID(ctx, 4))
}

func TestProductService_DeleteByID_NotFound(t *testing.T) {
	repo, _, service := newProductFixture(t)
	ctx := context.Background()

	repo.On("DeleteByID", ctx, uint(4)).Return(products.ErrProductNotFound)

	assert.ErrorIs(t, service.DeleteByID(ctx, 4), products.ErrProductNotFound)
}
