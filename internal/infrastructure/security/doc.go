// Package security implements password hashing with bcrypt and HS256 access tokens.
package security
