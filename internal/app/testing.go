//go:build integration
// +build integration

package app

import (
	"testing"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/cache"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/persistence"
	"github.com/Mumbi286/DukaYetu/internal/infrastructure/security"
	"github.com/Mumbi286/DukaYetu/internal/pkg/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestSecretKey signs tokens in integration tests
const TestSecretKey = "integration-test-secret"

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService    users.AuthService
	ProductService products.ProductService
	CartService    carts.CartService

	// Infrastructure
	DBContext *persistence.TestContext
	Redis     *miniredis.Miniredis
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	productCache := cache.NewRedisProductCacheWithClient(client, time.Minute, log)

	issuer, err := security.NewJWTIssuer(TestSecretKey, 30*time.Minute)
	require.NoError(t, err)

	authService, err := NewAuthService(dbContext.UserRepo, security.NewBcryptHasher(bcrypt.MinCost), issuer, log)
	require.NoError(t, err, "Failed to create auth service")

	productService, err := NewProductService(dbContext.ProductRepo, productCache, log)
	require.NoError(t, err, "Failed to create product service")

	cartService, err := NewCartService(dbContext.CartRepo, log)
	require.NoError(t, err, "Failed to create cart service")

	return &TestServices{
		AuthService:    authService,
		ProductService: productService,
		CartService:    cartService,
		DBContext:      dbContext,
		Redis:          mr,
	}
}
