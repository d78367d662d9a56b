package products

import (
	"errors"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/pkg/validators"
)

// ErrProductNotFound is returned when no product has the requested ID
var ErrProductNotFound = errors.New("product not found")

// Product entity
type Product struct {
	ID              uint
	Name            string  `validate:"required,min=1,max=200"`
	Description     string  `validate:"max=2000"`
	Price           float64 `validate:"gt=0"`
	ImageURL        string  `validate:"omitempty,url,max=500"`
	Stock           int     `validate:"min=0"`
	OwnerID         uint
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
}

// Validate for validating Product struct
func (p *Product) Validate() error {
	return validators.Struct(p)
}

// ProductUpdate holds a partial update. Nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
	Stock       *int
}

// Apply copies the set fields onto p
func (u *ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
}

// ProductQuery filters, sorts and pages the product list
type ProductQuery struct {
	Search    string `validate:"max=200"`
	Limit     int    `validate:"min=0,max=1000"`
	Offset    int    `validate:"min=0"`
	SortBy    string `validate:"omitempty,oneof=id name price date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewProductQuery returns a query listing everything by ID
func NewProductQuery() *ProductQuery {
	return &ProductQuery{}
}

// IsDefault reports whether the query carries no filter, paging or sorting
func (q *ProductQuery) IsDefault() bool {
	return *q == (ProductQuery{})
}

// Validate for validating ProductQuery struct
func (q *ProductQuery) Validate() error {
	return validators.Struct(q)
}
