// Package monitor records simulator state through a validated transform
// set. A monitor owns one *transform.Transforms and decides on which steps
// to sample:
//
//   - Raw records every step;
//   - SubSample records every period-th step (step % period == 0).
//
// Each recorded step runs ApplyPre on the raw state, wraps the result as a
// (time, sample) pair and runs ApplyPost on it. Collect drives any number
// of monitors from a Source of (step, time, state) triples.
//
// Every monitor reports to package-level Prometheus collectors labelled by
// monitor name: samples recorded, evaluation failures by stage, and the
// latency of one pre+post application.
package monitor
