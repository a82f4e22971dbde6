// SPDX-License-Identifier: MIT

package monitor

import (
	"errors"
	"fmt"
)

var (
	// ErrPeriod indicates a sub-sampling period below one step.
	ErrPeriod = errors.New("monitor: period must be >= 1")

	// ErrStep indicates a negative step index.
	ErrStep = errors.New("monitor: step must be >= 0")

	// ErrNoMonitors indicates Collect was called without monitors.
	ErrNoMonitors = errors.New("monitor: no monitors")
)

// monitorErrorf wraps an underlying error with the monitor name.
func monitorErrorf(name string, err error) error {
	return fmt.Errorf("monitor %q: %w", name, err)
}
