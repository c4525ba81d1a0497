// Package corelog wraps zap for the engine's structured logging, following
// rdtc8822-debug-L1JGO-Whale/cmd/l1jgo/main.go's newLogger: a production/
// development config switch producing a *zap.Logger, used throughout the
// rest of that codebase as *zap.SugaredLogger-style structured calls
// (zap.String(...), zap.Int(...)).
package corelog

import "go.uber.org/zap"

// New builds a logger. dev selects zap's human-readable development
// encoder (matching rdtc8822's behavior when its config requests
// "development" logging); otherwise the JSON production encoder is used.
func New(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewNop returns a logger that discards everything, for tests and replay
// runs that don't care about log output.
func NewNop() *zap.Logger {
	return zap.NewNop()
}
