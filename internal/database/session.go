package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrSessionClosed is returned by operations attempted after Close.
var ErrSessionClosed = errors.New("database session is closed")

// Session is the unit of work handed to every repository operation. One is
// opened per external request and closed when the request ends; the GORM
// handle it exposes is bound to the session's context, so nothing can run on
// it after Close.
type Session struct {
	ctx    context.Context
	cancel context.CancelFunc
	db     *gorm.DB
}

func newSession(parent context.Context, db *gorm.DB) *Session {
	ctx, cancel := context.WithCancelCause(parent)
	return &Session{
		ctx:    ctx,
		cancel: func() { cancel(ErrSessionClosed) },
		db:     db.WithContext(ctx),
	}
}

// DB returns the GORM handle scoped to this session.
func (s *Session) DB() *gorm.DB {
	return s.db
}

// Context returns the context the session is bound to.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Err reports ErrSessionClosed once the session was closed or when there is
// no session at all, or the parent context's error if it ended first.
func (s *Session) Err() error {
	if s == nil {
		return ErrSessionClosed
	}
	if s.ctx.Err() == nil {
		return nil
	}
	return context.Cause(s.ctx)
}

// Close releases the session. It is safe to call more than once.
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.cancel()
}

// Transaction runs fn in a database transaction. The nested session shares
// the parent's lifetime.
func (s *Session) Transaction(fn func(tx *Session) error) error {
	if err := s.Err(); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Session{ctx: s.ctx, cancel: func() {}, db: tx})
	})
}
