package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrSessionClosed is returned when a committed or rolled back session is used again
var ErrSessionClosed = errors.New("session already closed")

// SessionFactory hands out units of work bound to the single engine handle
type SessionFactory struct {
	db *gorm.DB
}

// NewSessionFactory binds a session factory to the engine
func NewSessionFactory(db *gorm.DB) (*SessionFactory, error) {
	if db == nil {
		return nil, fmt.Errorf("session factory requires an engine")
	}
	return &SessionFactory{db: db}, nil
}

// Engine returns the engine handle sessions are bound to
func (f *SessionFactory) Engine() *gorm.DB {
	return f.db
}

// Begin opens a unit of work. Statements issued through Session.DB are visible to
// later queries in the same session and to nobody else until Commit.
func (f *SessionFactory) Begin(ctx context.Context) (*Session, error) {
	tx := f.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin session: %w", tx.Error)
	}
	return &Session{tx: tx}, nil
}

// Transaction runs fn in a session, committing when it returns nil and rolling back
// on error or panic.
func (f *SessionFactory) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return f.db.WithContext(ctx).Transaction(fn)
}

// Session is a single unit of work
type Session struct {
	tx      *gorm.DB
	flushes int
	closed  bool
}

// DB returns the transaction scoped handle
func (s *Session) DB() *gorm.DB {
	return s.tx
}

// Flush marks the writes issued so far with a savepoint. Later writes can be
// discarded with RollbackToFlush while keeping the flushed ones pending.
func (s *Session) Flush() error {
	if s.closed {
		return ErrSessionClosed
	}

	name := savepointName(s.flushes + 1)
	if err := s.tx.SavePoint(name).Error; err != nil {
		return fmt.Errorf("failed to flush session: %w", err)
	}
	s.flushes++
	return nil
}

// RollbackToFlush discards the writes issued after the last Flush
func (s *Session) RollbackToFlush() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.flushes == 0 {
		return fmt.Errorf("session has not been flushed")
	}

	if err := s.tx.RollbackTo(savepointName(s.flushes)).Error; err != nil {
		return fmt.Errorf("failed to roll back to flush: %w", err)
	}
	return nil
}

func savepointName(n int) string {
	return fmt.Sprintf("flush_%d", n)
}

// Commit makes the pending changes durable
func (s *Session) Commit() error {
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true

	if err := s.tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

// Rollback discards the pending changes. It is a no-op on a closed session,
// so it can be deferred right after Begin.
func (s *Session) Rollback() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.tx.Rollback().Error; err != nil {
		return fmt.Errorf("failed to roll back session: %w", err)
	}
	return nil
}
