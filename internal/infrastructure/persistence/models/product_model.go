package models

import (
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/products"
)

// ProductModel is the GORM database model for catalog products
type ProductModel struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	Name            string    `gorm:"not null;index;type:varchar(200)"`
	Description     string    `gorm:"type:text"`
	Price           float64   `gorm:"not null"`
	ImageURL        string    `gorm:"type:varchar(500)"`
	Stock           int       `gorm:"not null"`
	OwnerID         uint      `gorm:"index"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts GORM model to domain entity
func (m *ProductModel) ToDomain() *products.Product {
	return &products.Product{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		ImageURL:        m.ImageURL,
		Stock:           m.Stock,
		OwnerID:         m.OwnerID,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProductModel) FromDomain(p *products.Product) {
	m.ID = p.ID
	m.Name = p.Name
	m.Description = p.Description
	m.Price = p.Price
	m.ImageURL = p.ImageURL
	m.Stock = p.Stock
	m.OwnerID = p.OwnerID
	m.DateTimeCreated = p.DateTimeCreated
	m.DateTimeUpdated = p.DateTimeUpdated
}
