package quadtree

import (
	"errors"

	"go.uber.org/zap"
)

// ErrResolution is returned by New for a resolution outside 1..16.
var ErrResolution = errors.New("quadtree: resolution out of range")

type options struct {
	logger *zap.Logger
}

// Option configures a Quadtree.
type Option func(*options)

// WithLogger sets the logger structural edits (splits, coalescing, rejected
// points) are reported to at debug level. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
