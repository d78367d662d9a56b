// Package models contains the GORM models backing users, products and cart items.
// Models are kept apart from the domain entities and converted with ToDomain/FromDomain.
// Registry lists every model so schema materialization can create them together.
package models
