package foundations

import (
	"go.uber.org/zap"

	"github.com/typograph-lang/typograph/diag"
)

// Engine is the boundary to the engine context threaded through every
// construct and set call. The core treats it as a capability bag for
// tracing and non-fatal reporting; the concrete implementation lives in
// the engine package.
type Engine interface {
	// Logger returns the engine's structured logger. Never nil.
	Logger() *zap.Logger

	// Warn records a non-fatal diagnostic with the engine.
	Warn(d *diag.Diagnostic)
}
