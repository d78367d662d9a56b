// Package persistence owns the database engine, the session factory and the
// GORM repositories for users, products and cart items.
//
// The engine is selected from the resolved DATABASE_URL: PostgreSQL is opened
// as is, SQLite is pinned to a single connection shared by every request.
// Schema materialization creates the registered tables when they are absent.
package persistence
