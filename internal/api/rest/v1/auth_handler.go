package v1

import (
	"net/http"
	"strings"

	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for handling registration and login
type AuthHandler interface {
	Register(ctx *gin.Context)
	Login(ctx *gin.Context)
	Me(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
	logger      logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, logger logger.Logger) AuthHandler {
	return &authHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles the POST request creating a user account
// @Summary Register a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body RegisterRequest true "Account data"
// @Success 201 {object} UserResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /auth [post]
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "invalid registration data: "+err.Error())
		return
	}

	user, err := handler.authService.Register(ctx.Request.Context(), request.ToDomain())
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewUserResponse(user))
}

// Login handles the form encoded POST request exchanging credentials for a token
// @Summary Issue an access token
// @Tags Auth
// @Accept x-www-form-urlencoded,mpfd
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/token [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	username := strings.TrimSpace(ctx.PostForm("username"))
	password := ctx.PostForm("password")
	if username == "" || password == "" {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "username and password are required")
		return
	}

	token, err := handler.authService.Authenticate(ctx.Request.Context(), username, password)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{
		AccessToken: token.Token,
		TokenType:   token.TokenType,
	})
}

// Me returns the authenticated user
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
func (handler *authHandler) Me(ctx *gin.Context) {
	user, ok := CurrentUser(ctx)
	if !ok {
		abortWithDetail(ctx, http.StatusUnauthorized, "not authenticated")
		return
	}

	ctx.JSON(http.StatusOK, NewUserResponse(user))
}
