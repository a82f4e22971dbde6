// SPDX-License-Identifier: MIT

package monitor

import (
	"log/slog"

	"github.com/katalvlaran/montransform/internal/logging"
	"github.com/katalvlaran/montransform/transform"
)

const (
	// DefaultRawName labels a Raw monitor built without WithName.
	DefaultRawName = "raw"

	// DefaultSubSampleName labels a SubSample monitor built without WithName.
	DefaultSubSampleName = "subsample"
)

const panicNameEmpty = "monitor: WithName: name must be non-empty"

// Option configures a monitor.
type Option func(*options)

type options struct {
	name      string
	logger    *slog.Logger
	transform []transform.Option
}

// WithName sets the monitor name used in errors, logs and metric labels.
// Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic(panicNameEmpty)
	}

	return func(o *options) { o.name = name }
}

// WithLogger sets the monitor logger; it is also handed to the transform
// set unless a later WithTransformOptions overrides it. Nil means no-op.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logging.NewNop()
		}
		o.logger = l
	}
}

// WithTransformOptions forwards options to transform.New
// (delimiter, variable names, finite policy, ...).
func WithTransformOptions(opts ...transform.Option) Option {
	return func(o *options) { o.transform = append(o.transform, opts...) }
}

func gatherOptions(defaultName string, opts ...Option) options {
	o := options{name: defaultName, logger: logging.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
