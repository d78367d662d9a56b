package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/products"
	"github.com/Mumbi286/DukaYetu/internal/domain/users"
	"github.com/google/uuid"
)

// Test constants
const (
	TestPassword     = "s3cret-pass"
	TestProductPrice = 1500.0
	TestProductStock = 10
)

// NewTestUser returns a valid, active, not yet persisted user with a unique username
func NewTestUser(t *testing.T) *users.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	return &users.User{
		Username:        "user_" + suffix,
		Email:           fmt.Sprintf("user_%s@example.com", suffix),
		FirstName:       "Wanjiru",
		LastName:        "Kamau",
		HashedPassword:  "$2a$10$placeholderplaceholderplaceholderplaceholderplacehold",
		IsActive:        true,
		DateTimeCreated: time.Now(),
	}
}

// NewTestRegistration returns a valid registration with a unique username
func NewTestRegistration(t *testing.T) *users.Registration {
	t.Helper()

	suffix := uuid.NewString()[:8]
	return &users.Registration{
		Username:  "user_" + suffix,
		Email:     fmt.Sprintf("user_%s@example.com", suffix),
		FirstName: "Otieno",
		LastName:  "Ouma",
		Password:  TestPassword,
	}
}

// NewTestProduct returns a valid, not yet persisted product
func NewTestProduct(t *testing.T, name string) *products.Product {
	t.Helper()

	if name == "" {
		name = "Kikoi wrap"
	}

	return &products.Product{
		Name:            name,
		Description:     "Handwoven cotton",
		Price:           TestProductPrice,
		ImageURL:        "https://cdn.example.com/" + uuid.NewString() + ".png",
		Stock:           TestProductStock,
		DateTimeCreated: time.Now(),
		DateTimeUpdated: time.Now(),
	}
}
