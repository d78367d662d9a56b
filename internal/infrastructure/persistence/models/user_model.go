package models

import (
	"time"

	"github.com/Mumbi286/DukaYetu/internal/domain/users"
)

// UserModel is the GORM database model for user accounts
type UserModel struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	Username        string    `gorm:"not null;uniqueIndex;type:varchar(50)"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	FirstName       string    `gorm:"type:varchar(100)"`
	LastName        string    `gorm:"type:varchar(100)"`
	HashedPassword  string    `gorm:"not null;type:varchar(255)"`
	IsActive        bool      `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:              m.ID,
		Username:        m.Username,
		Email:           m.Email,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		HashedPassword:  m.HashedPassword,
		IsActive:        m.IsActive,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.HashedPassword = u.HashedPassword
	m.IsActive = u.IsActive
	m.DateTimeCreated = u.DateTimeCreated
}
