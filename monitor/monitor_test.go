// SPDX-License-Identifier: MIT

package monitor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/katalvlaran/montransform/internal/logging"
	"github.com/katalvlaran/montransform/ndarray"
	"github.com/katalvlaran/montransform/transform"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func state(t testing.TB, vals ...float64) *ndarray.Array {
	t.Helper()
	a, err := ndarray.FromSlice(2, len(vals)/2, 1, vals)
	require.NoError(t, err)

	return a
}

func steps(t testing.TB, n int) []Step {
	t.Helper()
	out := make([]Step, n)
	for i := range out {
		x := float64(i)
		out[i] = Step{Index: i, Time: x * 0.1, State: state(t, x, x+1, 2*x, 2*x+1)}
	}

	return out
}

func TestRaw_RecordsEveryStep(t *testing.T) {
	m, err := NewRaw("x0;x1;x0+x1", ";;mon*2", WithName("raw_every_step"))
	require.NoError(t, err)
	assert.Equal(t, "raw_every_step", m.Name())
	assert.Equal(t, 3, m.Transforms().Len())

	for _, st := range steps(t, 3) {
		s, ok, err := m.Record(st.Index, st.Time, st.State)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, st.Time, s.Time)
		assert.Equal(t, ndarray.Shape{Vars: 3, Nodes: 2, Modes: 1}, s.Data.Shape())
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(samplesTotal.WithLabelValues("raw_every_step")))
}

func TestRaw_Values(t *testing.T) {
	m, err := NewRaw("V;W;V**2;W-V", ";;;exp(mon*0)",
		WithName("raw_values"),
		WithTransformOptions(transform.WithVariableNames("V", "W")))
	require.NoError(t, err)

	s, ok, err := m.Record(0, 0, state(t, 1, 2, 3, 5))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3, 5, 1, 4, 1, 1}, s.Data.Data())
}

func TestSubSample_Period(t *testing.T) {
	m, err := NewSubSample(3, "x0", "", WithName("sub_period"))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Period())

	var recorded []int
	for _, st := range steps(t, 10) {
		_, ok, err := m.Record(st.Index, st.Time, st.State)
		require.NoError(t, err)
		if ok {
			recorded = append(recorded, st.Index)
		}
	}
	assert.Equal(t, []int{0, 3, 6, 9}, recorded)
	assert.Equal(t, 4.0, testutil.ToFloat64(samplesTotal.WithLabelValues("sub_period")))
}

func TestSubSample_SkipsWithoutEvaluating(t *testing.T) {
	// x5 does not exist; skipped steps must not surface the failure.
	m, err := NewSubSample(2, "x5", "", WithName("sub_skip"))
	require.NoError(t, err)

	_, ok, err := m.Record(1, 0.1, state(t, 1, 2, 3, 4))
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = m.Record(2, 0.2, state(t, 1, 2, 3, 4))
	require.ErrorIs(t, err, transform.ErrEvaluation)
}

func TestNew_Errors(t *testing.T) {
	_, err := NewSubSample(0, "x0", "")
	require.ErrorIs(t, err, ErrPeriod)

	_, err = NewRaw(";;", ";;", WithName("broken"))
	require.ErrorIs(t, err, transform.ErrSyntax)
	assert.Contains(t, err.Error(), `"broken"`)

	_, err = NewRaw("x0;x1", "mon;mon;mon")
	require.ErrorIs(t, err, transform.ErrShape)

	m, err := NewRaw("x0", "")
	require.NoError(t, err)
	_, _, err = m.Record(-1, 0, state(t, 1, 2))
	require.ErrorIs(t, err, ErrStep)

	assert.Panics(t, func() { WithName("") })
}

func TestRecord_ErrorMetricsAndLog(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWithWriter(&buf, slog.LevelDebug)

	m, err := NewRaw("x0", "log(mon)", WithName("raw_failing"), WithLogger(log))
	require.NoError(t, err)

	_, ok, err := m.Record(4, 0.4, state(t, 0, 1, 2, 3))
	require.ErrorIs(t, err, transform.ErrEvaluation)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "step 4")

	assert.Equal(t, 1.0, testutil.ToFloat64(evalErrorsTotal.WithLabelValues("raw_failing", stagePost)))
	assert.Equal(t, 0.0, testutil.ToFloat64(evalErrorsTotal.WithLabelValues("raw_failing", stagePre)))
	assert.Equal(t, 0.0, testutil.ToFloat64(samplesTotal.WithLabelValues("raw_failing")))
	assert.Contains(t, buf.String(), "post transform failed")
	assert.Contains(t, buf.String(), "monitor=raw_failing")
}

func TestCollect(t *testing.T) {
	raw, err := NewRaw("x0", "", WithName("collect_raw"))
	require.NoError(t, err)
	sub, err := NewSubSample(2, "x1", "mon-1", WithName("collect_sub"))
	require.NoError(t, err)

	series, err := Collect(context.Background(), NewSliceSource(steps(t, 5)...), raw, sub)
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, "collect_raw", series[0].Name)
	assert.Len(t, series[0].Samples, 5)
	assert.Equal(t, "collect_sub", series[1].Name)
	require.Len(t, series[1].Samples, 3)

	// step 4: x1 = [8, 9], post mon-1.
	last := series[1].Samples[2]
	assert.InDelta(t, 0.4, last.Time, 1e-12)
	assert.Equal(t, []float64{7, 8}, last.Data.Data())
}

func TestCollect_Errors(t *testing.T) {
	_, err := Collect(context.Background(), NewSliceSource())
	require.ErrorIs(t, err, ErrNoMonitors)

	m, err := NewRaw("x3", "", WithName("collect_failing"))
	require.NoError(t, err)
	series, err := Collect(context.Background(), NewSliceSource(steps(t, 2)...), m)
	require.ErrorIs(t, err, transform.ErrEvaluation)
	assert.Empty(t, series[0].Samples)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m2, err := NewRaw("x0", "", WithName("collect_cancelled"))
	require.NoError(t, err)
	_, err = Collect(ctx, NewSliceSource(steps(t, 2)...), m2)
	require.True(t, errors.Is(err, context.Canceled))
}
