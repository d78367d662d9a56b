package v1

import (
	"net/http"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CartHandler defines the interface for handling the current user's cart
type CartHandler interface {
	GetCart(ctx *gin.Context)
	AddItem(ctx *gin.Context)
	UpdateItem(ctx *gin.Context)
	RemoveItem(ctx *gin.Context)
}

type cartHandler struct {
	cartService carts.CartService
	logger      logger.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService carts.CartService, logger logger.Logger) CartHandler {
	return &cartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// GetCart handles the GET request returning the cart with totals
// @Summary Get the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} CartResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart [get]
func (handler *cartHandler) GetCart(ctx *gin.Context) {
	user, ok := CurrentUser(ctx)
	if !ok {
		abortWithDetail(ctx, http.StatusUnauthorized, "not authenticated")
		return
	}

	cart, err := handler.cartService.GetCart(ctx.Request.Context(), user.ID)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewCartResponse(cart))
}

// AddItem handles the POST request adding a product to the cart
// @Summary Add a product to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param requestBody body CartAddRequest true "Product and quantity"
// @Success 201 {object} CartItemResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /cart/add [post]
func (handler *cartHandler) AddItem(ctx *gin.Context) {
	user, ok := CurrentUser(ctx)
	if !ok {
		abortWithDetail(ctx, http.StatusUnauthorized, "not authenticated")
		return
	}

	var request CartAddRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "invalid cart data: "+err.Error())
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	item, err := handler.cartService.AddItem(ctx.Request.Context(), user.ID, request.ProductID, request.QuantityOrDefault())
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewCartItemResponse(item))
}

// UpdateItem handles the PUT request setting a line quantity
// @Summary Update a cart line
// @Tags Cart
// @Accept json
// @Produce json
// @Param item_id path int true "Cart item ID"
// @Param requestBody body CartUpdateRequest true "New quantity"
// @Success 200 {object} CartItemResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /cart/update/{item_id} [put]
func (handler *cartHandler) UpdateItem(ctx *gin.Context) {
	user, ok := CurrentUser(ctx)
	if !ok {
		abortWithDetail(ctx, http.StatusUnauthorized, "not authenticated")
		return
	}

	itemID, ok := parseIDParam(ctx, "item_id")
	if !ok {
		return
	}

	var request CartUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "invalid cart data: "+err.Error())
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	item, err := handler.cartService.UpdateItem(ctx.Request.Context(), user.ID, itemID, *request.Quantity)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewCartItemResponse(item))
}

// RemoveItem handles the DELETE request removing a cart line
// @Summary Remove a cart line
// @Tags Cart
// @Produce json
// @Param item_id path int true "Cart item ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/remove/{item_id} [delete]
func (handler *cartHandler) RemoveItem(ctx *gin.Context) {
	user, ok := CurrentUser(ctx)
	if !ok {
		abortWithDetail(ctx, http.StatusUnauthorized, "not authenticated")
		return
	}

	itemID, ok := parseIDParam(ctx, "item_id")
	if !ok {
		return
	}

	if err := handler.cartService.RemoveItem(ctx.Request.Context(), user.ID, itemID); err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Detail: "item removed from cart"})
}
