package v1

import (
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/carts"
	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/Mumbi286/DukaYetu/internal/pkg/validators"
)

// ErrorResponse is the body of every failed request. The client reads detail.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse confirms an operation without a resource to return
type MessageResponse struct {
	Detail string `json:"detail"`
}

// RegisterRequest is the body of POST /auth
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// ToDomain converts the request to a registration
func (r *RegisterRequest) ToDomain() *users.Registration {
	return &users.Registration{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  r.Password,
	}
}

// UserResponse never carries the password hash
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse maps a user to its response
func NewUserResponse(u *users.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		CreatedAt: u.DateTimeCreated,
	}
}

// TokenResponse is the body of POST /auth/token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProductRequest is the body of POST /products
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gt=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url,max=500"`
	Stock       int     `json:"stock" validate:"min=0"`
}

// Validate for validating ProductRequest struct
func (r *ProductRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain converts the request to a product
func (r *ProductRequest) ToDomain() *products.Product {
	return &products.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Stock:       r.Stock,
	}
}

// ProductUpdateRequest is the body of PUT /products/:id. Absent fields are left unchanged.
type ProductUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,max=500"`
	Stock       *int     `json:"stock" validate:"omitempty,min=0"`
}

// Validate for validating ProductUpdateRequest struct
func (r *ProductUpdateRequest) Validate() error {
	return validators.Struct(r)
}

// ToDomain converts the request to a partial update
func (r *ProductUpdateRequest) ToDomain() *products.ProductUpdate {
	return &products.ProductUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		Stock:       r.Stock,
	}
}

// ProductResponse represents a catalog product
type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Stock       int       `json:"stock"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProductResponse maps a product to its response
func NewProductResponse(p *products.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.DateTimeCreated,
		UpdatedAt:   p.DateTimeUpdated,
	}
}

// CartAddRequest is the body of POST /cart/add. Quantity defaults to 1.
type CartAddRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  *int `json:"quantity"`
}

// Validate for validating CartAddRequest struct
func (r *CartAddRequest) Validate() error {
	return validators.Struct(r)
}

// QuantityOrDefault returns the requested quantity, 1 when absent
func (r *CartAddRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// CartUpdateRequest is the body of PUT /cart/update/:item_id
type CartUpdateRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// Validate for validating CartUpdateRequest struct
func (r *CartUpdateRequest) Validate() error {
	return validators.Struct(r)
}

// CartItemResponse is one cart line with its product
type CartItemResponse struct {
	ID        uint             `json:"id"`
	ProductID uint             `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Subtotal  float64          `json:"subtotal"`
	Product   *ProductResponse `json:"product,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewCartItemResponse maps a cart item to its response
func NewCartItemResponse(i *carts.CartItem) CartItemResponse {
	response := CartItemResponse{
		ID:        i.ID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Subtotal:  i.Subtotal(),
		CreatedAt: i.DateTimeCreated,
	}
	if i.Product != nil {
		product := NewProductResponse(i.Product)
		response.Product = &product
	}
	return response
}

// CartResponse is the body of GET /cart
type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	Total     float64            `json:"total"`
	ItemCount int                `json:"item_count"`
}

// NewCartResponse maps a cart to its response
func NewCartResponse(c *carts.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, NewCartItemResponse(item))
	}
	return CartResponse{
		Items:     items,
		Total:     c.Total(),
		ItemCount: c.ItemCount(),
	}
}
