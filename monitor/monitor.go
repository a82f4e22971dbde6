// SPDX-License-Identifier: MIT

package monitor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/montransform/ndarray"
	"github.com/katalvlaran/montransform/transform"
)

// Monitor samples a simulation through its transform set.
type Monitor interface {
	// Name labels the monitor in errors, logs and metrics.
	Name() string

	// Transforms returns the validated transform set the monitor owns.
	Transforms() *transform.Transforms

	// Record offers one simulator step. ok is false when the monitor does
	// not sample this step; otherwise the post-transformed sample is returned.
	Record(step int, t float64, state *ndarray.Array) (s transform.Sample, ok bool, err error)
}

// base carries what every monitor kind shares.
type base struct {
	name string
	tr   *transform.Transforms
	log  *slog.Logger
}

func newBase(defaultName, pre, post string, opts []Option) (base, error) {
	o := gatherOptions(defaultName, opts...)
	topts := append([]transform.Option{transform.WithLogger(o.logger)}, o.transform...)

	tr, err := transform.New(pre, post, topts...)
	if err != nil {
		return base{}, monitorErrorf(o.name, err)
	}

	return base{name: o.name, tr: tr, log: o.logger.With("monitor", o.name)}, nil
}

// Name implements Monitor.
func (b *base) Name() string { return b.name }

// Transforms implements Monitor.
func (b *base) Transforms() *transform.Transforms { return b.tr }

// sample runs pre then post for one recorded step.
func (b *base) sample(step int, t float64, state *ndarray.Array) (transform.Sample, error) {
	start := time.Now()

	pre, err := b.tr.ApplyPre(state)
	if err != nil {
		evalErrorsTotal.WithLabelValues(b.name, stagePre).Inc()
		b.log.Warn("pre transform failed", "step", step, "error", err)

		return transform.Sample{}, monitorErrorf(b.name, fmt.Errorf("step %d: %w", step, err))
	}
	out, err := b.tr.ApplyPost(transform.Sample{Time: t, Data: pre})
	if err != nil {
		evalErrorsTotal.WithLabelValues(b.name, stagePost).Inc()
		b.log.Warn("post transform failed", "step", step, "error", err)

		return transform.Sample{}, monitorErrorf(b.name, fmt.Errorf("step %d: %w", step, err))
	}

	applyDuration.WithLabelValues(b.name).Observe(time.Since(start).Seconds())
	samplesTotal.WithLabelValues(b.name).Inc()

	return out, nil
}

// Raw records every step.
type Raw struct {
	base
}

// NewRaw builds a Raw monitor from delimited pre and post expression lists.
// Construction errors are those of transform.New, wrapped with the name.
func NewRaw(pre, post string, opts ...Option) (*Raw, error) {
	b, err := newBase(DefaultRawName, pre, post, opts)
	if err != nil {
		return nil, err
	}

	return &Raw{base: b}, nil
}

// Record implements Monitor.
func (m *Raw) Record(step int, t float64, state *ndarray.Array) (transform.Sample, bool, error) {
	if step < 0 {
		return transform.Sample{}, false, monitorErrorf(m.name, ErrStep)
	}
	s, err := m.sample(step, t, state)
	if err != nil {
		return transform.Sample{}, false, err
	}

	return s, true, nil
}

// SubSample records steps that are multiples of its period.
type SubSample struct {
	base
	period int
}

// NewSubSample builds a SubSample monitor. Returns ErrPeriod when period < 1.
func NewSubSample(period int, pre, post string, opts ...Option) (*SubSample, error) {
	if period < 1 {
		o := gatherOptions(DefaultSubSampleName, opts...)

		return nil, monitorErrorf(o.name, fmt.Errorf("%w: got %d", ErrPeriod, period))
	}
	b, err := newBase(DefaultSubSampleName, pre, post, opts)
	if err != nil {
		return nil, err
	}

	return &SubSample{base: b, period: period}, nil
}

// Period returns the sampling period in steps.
func (m *SubSample) Period() int { return m.period }

// Record implements Monitor. Steps not divisible by the period are skipped
// without evaluating anything.
func (m *SubSample) Record(step int, t float64, state *ndarray.Array) (transform.Sample, bool, error) {
	if step < 0 {
		return transform.Sample{}, false, monitorErrorf(m.name, ErrStep)
	}
	if step%m.period != 0 {
		return transform.Sample{}, false, nil
	}
	s, err := m.sample(step, t, state)
	if err != nil {
		return transform.Sample{}, false, err
	}

	return s, true, nil
}
