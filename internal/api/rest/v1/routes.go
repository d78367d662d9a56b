package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthCheck reports whether a backing service is reachable
type HealthCheck func(ctx context.Context) error

// healthCheckTimeout bounds every /healthz probe
const healthCheckTimeout = 2 * time.Second

// SetupRoutes registers the cart, auth and product route groups.
func SetupRoutes(r *gin.Engine,
	authService users.AuthService,
	productService products.ProductService,
	cartService carts.CartService,
	authLimiter *RateLimiter,
	log logger.Logger) {

	requireAuth := RequireAuth(authService, log)

	// Cart Routes
	cartHandler := NewCartHandler(cartService, log)
	cart := r.Group("/cart", requireAuth)
	cart.GET("", cartHandler.GetCart)
	cart.POST("/add", cartHandler.AddItem)
	cart.PUT("/update/:item_id", cartHandler.UpdateItem)
	cart.DELETE("/remove/:item_id", cartHandler.RemoveItem)

	// Auth Routes
	authHandler := NewAuthHandler(authService, log)
	auth := r.Group("/auth", authLimiter.Middleware())
	auth.POST("", authHandler.Register)
	auth.POST("/token", authHandler.Login)
	auth.GET("/me", requireAuth, authHandler.Me)

	// Products Routes
	productHandler := NewProductHandler(productService, log)
	product := r.Group("/products")
	product.GET("", productHandler.List)
	product.GET("/:id", productHandler.GetByID)
	product.POST("", requireAuth, productHandler.Create)
	product.PUT("/:id", requireAuth, productHandler.Update)
	product.DELETE("/:id", requireAuth, productHandler.DeleteByID)
}

// SetupOperationalRoutes registers /healthz and /metrics. Every check must pass for a 200.
func SetupOperationalRoutes(r *gin.Engine, checks map[string]HealthCheck) {
	r.GET("/healthz", func(ctx *gin.Context) {
		probeCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(probeCtx); err != nil {
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		ctx.JSON(status, gin.H{"status": http.StatusText(status), "checks": results})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
