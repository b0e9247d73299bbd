// Package logging sends structured logs to a file under the XDG state dir.
// The TUI owns stdout, so nothing may ever log there.
package logging

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/preferreddeals/prefdeals/pkg/runtime"
)

// New builds a file-backed logger at the given path.
func New(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to build logger: %w", err)
	}
	return logger, nil
}

// NewDefault logs to prefdeals.log under the XDG state dir.
func NewDefault() (*zap.Logger, error) {
	p, err := runtime.StateFile("prefdeals.log")
	if err != nil {
		return nil, fmt.Errorf("unable to resolve log path: %w", err)
	}
	return New(p)
}
