// SPDX-License-Identifier: MIT

package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	stagePre  = "pre"
	stagePost = "post"
)

var (
	// samplesTotal counts recorded samples per monitor.
	samplesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "montransform",
		Subsystem: "monitor",
		Name:      "samples_total",
		Help:      "Total samples recorded by monitor",
	}, []string{"monitor"})

	// evalErrorsTotal counts failed applications by monitor and stage.
	evalErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "montransform",
		Subsystem: "monitor",
		Name:      "evaluation_errors_total",
		Help:      "Total transform evaluation failures by monitor and stage",
	}, []string{"monitor", "stage"})

	// applyDuration tracks pre+post latency of one recorded step.
	applyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "montransform",
		Subsystem: "monitor",
		Name:      "apply_duration_seconds",
		Help:      "Duration of one pre+post transform application in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs to ~260ms
	}, []string{"monitor"})
)
