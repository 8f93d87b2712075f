// Package engine provides the per-pass context threaded through element
// construction, style resolution, and realization. An Engine is owned by
// one compilation pass; the element registry it reads from is shared and
// immutable, while everything the engine accumulates (warnings, minted
// guards) is pass-local.
package engine

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/typograph-lang/typograph/diag"
	"github.com/typograph-lang/typograph/foundations"
)

// Engine is the concrete engine context. It satisfies foundations.Engine.
type Engine struct {
	pass   uuid.UUID
	logger *zap.Logger

	guards atomic.Uint64

	mu       sync.Mutex
	warnings []*diag.Diagnostic
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger installs a structured logger. Without it the engine logs
// nowhere.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine for one compilation pass.
func New(opts ...Option) *Engine {
	e := &Engine{
		pass:   uuid.New(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(zap.String("pass", e.pass.String()))
	return e
}

// Pass returns the pass identity, used to correlate trace output.
func (e *Engine) Pass() uuid.UUID {
	return e.pass
}

// Logger returns the engine's structured logger. Never nil.
func (e *Engine) Logger() *zap.Logger {
	return e.logger
}

// Warn records a non-fatal diagnostic with the engine.
func (e *Engine) Warn(d *diag.Diagnostic) {
	e.mu.Lock()
	e.warnings = append(e.warnings, d.WithSeverity(diag.Warning))
	e.mu.Unlock()
	e.logger.Debug("diagnostic warning",
		zap.String("code", d.Code),
		zap.String("message", d.Message))
}

// Warnings returns the diagnostics recorded so far, in order.
func (e *Engine) Warnings() []*diag.Diagnostic {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*diag.Diagnostic, len(e.warnings))
	copy(out, e.warnings)
	return out
}

// MintGuard mints a fresh guard token for one show-rule application.
// Tokens are unique within the engine; guards from different engines are
// never compared.
func (e *Engine) MintGuard() foundations.Guard {
	return foundations.Guard(e.guards.Add(1))
}

var _ foundations.Engine = (*Engine)(nil)
