package v1

import (
	"net/http"
	"strconv"

	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ProductHandler defines the interface for handling catalog operations
type ProductHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type productHandler struct {
	productService products.ProductService
	logger         logger.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService products.ProductService, logger logger.Logger) ProductHandler {
	return &productHandler{
		productService: productService,
		logger:         logger,
	}
}

// List handles the GET request listing products with optional query parameters
// @Summary List products
// @Tags Product
// @Produce json
// @Param search query string false "Case insensitive match on name or description"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sort_by query string false "id, name, price or date_time_created"
// @Param sort_order query string false "Sort order (asc/desc)"
// @Success 200 {array} ProductResponse
// @Failure 422 {object} ErrorResponse
// @Router /products [get]
func (handler *productHandler) List(ctx *gin.Context) {
	query := products.NewProductQuery()
	query.Search = ctx.Query("search")
	query.SortBy = ctx.Query("sort_by")
	query.SortOrder = ctx.Query("sort_order")

	var ok bool
	if query.Limit, ok = intQuery(ctx, "limit"); !ok {
		return
	}
	if query.Offset, ok = intQuery(ctx, "offset"); !ok {
		return
	}

	if err := query.Validate(); err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	list, err := handler.productService.List(ctx.Request.Context(), query)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	response := make([]ProductResponse, 0, len(list))
	for _, product := range list {
		response = append(response, NewProductResponse(product))
	}

	ctx.JSON(http.StatusOK, response)
}

// GetByID handles the GET request for a single product
// @Summary Get a product
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (handler *productHandler) GetByID(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	product, err := handler.productService.GetByID(ctx.Request.Context(), productID)
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProductResponse(product))
}

// Create handles the POST request adding a product owned by the current user
// @Summary Create a product
// @Tags Product
// @Accept json
// @Produce json
// @Param requestBody body ProductRequest true "Product data"
// @Success 201 {object} ProductResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /products [post]
func (handler *productHandler) Create(ctx *gin.Context) {
	user, ok := CurrentUser(ctx)
	if !ok {
		abortWithDetail(ctx, http.StatusUnauthorized, "not authenticated")
		return
	}

	var request ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "invalid product data: "+err.Error())
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	product, err := handler.productService.Create(ctx.Request.Context(), user.ID, request.ToDomain())
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewProductResponse(product))
}

// Update handles the PUT request applying a partial product update
// @Summary Update a product
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param requestBody body ProductUpdateRequest true "Fields to change"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /products/{id} [put]
func (handler *productHandler) Update(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var request ProductUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "invalid product data: "+err.Error())
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	product, err := handler.productService.Update(ctx.Request.Context(), productID, request.ToDomain())
	if err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProductResponse(product))
}

// DeleteByID handles the DELETE request removing a product and its cart lines
// @Summary Delete a product
// @Tags Product
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [delete]
func (handler *productHandler) DeleteByID(ctx *gin.Context) {
	productID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := handler.productService.DeleteByID(ctx.Request.Context(), productID); err != nil {
		abortWithError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Detail: "product deleted"})
}

// intQuery parses an optional non-negative integer query parameter
func intQuery(ctx *gin.Context, name string) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "invalid "+name+": "+strconv.Quote(raw))
		return 0, false
	}
	return value, true
}
