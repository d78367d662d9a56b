package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"
	"github.com/Mumbi286/DukaYetu/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// statusForError maps domain errors to an HTTP status and a client facing detail
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, validators.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, users.ErrUserExists):
		return http.StatusConflict, users.ErrUserExists.Error()
	case errors.Is(err, users.ErrInvalidCredentials):
		return http.StatusUnauthorized, users.ErrInvalidCredentials.Error()
	case errors.Is(err, users.ErrInvalidToken):
		return http.StatusUnauthorized, users.ErrInvalidToken.Error()
	case errors.Is(err, users.ErrInactiveUser):
		return http.StatusForbidden, users.ErrInactiveUser.Error()
	case errors.Is(err, users.ErrUserNotFound):
		return http.StatusNotFound, users.ErrUserNotFound.Error()
	case errors.Is(err, products.ErrProductNotFound):
		return http.StatusNotFound, products.ErrProductNotFound.Error()
	case errors.Is(err, carts.ErrCartItemNotFound):
		return http.StatusNotFound, carts.ErrCartItemNotFound.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// abortWithError writes the mapped error response. Unexpected errors are logged
// and hidden from the client.
func abortWithError(ctx *gin.Context, log logger.Logger, err error) {
	status, detail := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Error(fmt.Sprintf("%s %s failed: %v", ctx.Request.Method, ctx.Request.URL.Path, err))
	}
	if status == http.StatusUnauthorized {
		ctx.Header("WWW-Authenticate", "Bearer")
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// abortWithDetail writes an error response with an explicit status
func abortWithDetail(ctx *gin.Context, status int, detail string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// parseIDParam reads a positive numeric path parameter. Ids are capped at the
// signed 64-bit range the database columns hold.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil || id == 0 {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, fmt.Sprintf("invalid %s: %q", name, raw))
		return 0, false
	}
	return uint(id), true
}
