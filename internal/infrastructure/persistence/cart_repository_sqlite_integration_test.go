//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/persistence/models"
	"github.com/Mumbi286/DukaYetu/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartSqliteRepository_AddOrIncrement(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx)
	product := CreateTestProduct(t, ctx, 0, "")

	item, err := ctx.CartRepo.AddOrIncrement(context.Background(), user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	require.NotNil(t, item.Product)
	assert.Equal(t, product.Name, item.Product.Name)

	again, err := ctx.CartRepo.AddOrIncrement(context.Background(), user.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, item.ID, again.ID)
	assert.Equal(t, 5, again.Quantity)

	var count int64
	require.NoError(t, ctx.DB.Model(&models.CartItemModel{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCartSqliteRepository_AddOrIncrementUnknownProduct(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx)

	_, err := ctx.CartRepo.AddOrIncrement(context.Background(), user.ID, 999, 1)
	assert.ErrorIs(t, err, products.ErrProductNotFound)
}

func TestCartSqliteRepository_AddOrIncrementRejectsOverflow(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx)
	product := CreateTestProduct(t, ctx, 0, "")

	_, err := ctx.CartRepo.AddOrIncrement(context.Background(), user.ID, product.ID, 1000)
	require.NoError(t, err)

	_, err = ctx.CartRepo.AddOrIncrement(context.Background(), user.ID, product.ID, 1)
	assert.Error(t, err)

	items, err := ctx.CartRepo.ListByUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1000, items[0].Quantity)
}

func TestCartSqliteRepository_ListByUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	alice := CreateTestUser(t, ctx)
	bob := CreateTestUser(t, ctx)
	first := CreateTestProduct(t, ctx, 0, "First")
	second := CreateTestProduct(t, ctx, 0, "Second")

	_, err := ctx.CartRepo.AddOrIncrement(context.Background(), alice.ID, first.ID, 1)
	require.NoError(t, err)
	_, err = ctx.CartRepo.AddOrIncrement(context.Background(), alice.ID, second.ID, 1)
	require.NoError(t, err)
	_, err = ctx.CartRepo.AddOrIncrement(context.Background(), bob.ID, first.ID, 4)
	require.NoError(t, err)

	items, err := ctx.CartRepo.ListByUser(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "First", items[0].Product.Name)
	assert.Equal(t, "Second", items[1].Product.Name)
}

func TestCartSqliteRepository_UpdateQuantity(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx)
	intruder := CreateTestUser(t, ctx)
	product := CreateTestProduct(t, ctx, 0, "")

	item, err := ctx.CartRepo.AddOrIncrement(context.Background(), user.ID, product.ID, 1)
	require.NoError(t, err)

	updated, err := ctx.CartRepo.UpdateQuantity(context.Background(), user.ID, item.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Quantity)
	assert.NotNil(t, updated.Product)

	_, err = ctx.CartRepo.UpdateQuantity(context.Background(), intruder.ID, item.ID, 2)
	assert.ErrorIs(t, err, carts.ErrCartItemNotFound)

	_, err = ctx.CartRepo.UpdateQuantity(context.Background(), user.ID, item.ID, 0)
	assert.Error(t, err)
}

func TestCartSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, ctx)
	intruder := CreateTestUser(t, ctx)
	product := CreateTestProduct(t, ctx, 0, "")

	item, err := ctx.CartRepo.AddOrIncrement(context.Background(), user.ID, product.ID, 1)
	require.NoError(t, err)

	err = ctx.CartRepo.DeleteByID(context.Background(), intruder.ID, item.ID)
	assert.ErrorIs(t, err, carts.ErrCartItemNotFound)

	require.NoError(t, ctx.CartRepo.DeleteByID(context.Background(), user.ID, item.ID))

	_, err = ctx.CartRepo.GetByID(context.Background(), user.ID, item.ID)
	assert.ErrorIs(t, err, carts.ErrCartItemNotFound)
}
