package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"
	"github.com/Mumbi286/DukaYetu/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// RequireAuth resolves the bearer token into the current user or aborts with 401
func RequireAuth(authService users.AuthService, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			ctx.Header("WWW-Authenticate", "Bearer")
			abortWithDetail(ctx, http.StatusUnauthorized, "not authenticated")
			return
		}

		user, err := authService.ResolveToken(ctx.Request.Context(), token)
		if err != nil {
			abortWithError(ctx, log, err)
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth
func CurrentUser(ctx *gin.Context) (*users.User, bool) {
	value, exists := ctx.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*users.User)
	return user, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequestLogger logs method, path, status and latency of every request
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		log.Info(fmt.Sprintf("%s %s %d %s %s",
			ctx.Request.Method,
			ctx.Request.URL.Path,
			ctx.Writer.Status(),
			time.Since(start).Round(time.Microsecond),
			ctx.ClientIP(),
		))
	}
}

// Metrics records request counts and latencies per matched route
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequests.WithLabelValues(ctx.Request.Method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(ctx.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
