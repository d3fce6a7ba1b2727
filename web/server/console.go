package server

import (
	"fmt"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// RenderLogger implements core.Logger by tagging every message with a render ID
type RenderLogger struct {
	renderID string
	base     core.Logger
}

// NewRenderLogger creates a logger for a specific render
func NewRenderLogger(renderID string, base core.Logger) core.Logger {
	return &RenderLogger{
		renderID: renderID,
		base:     base,
	}
}

// Printf implements core.Logger interface
func (rl *RenderLogger) Printf(format string, args ...interface{}) {
	rl.base.Printf("[%s] %s", rl.renderID, fmt.Sprintf(format, args...))
}
