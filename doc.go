// Package montransform is a monitor-transform engine for time-stepped
// network simulations: users attach "pre" expressions to the raw state and
// "post" expressions to every recorded sample, and the engine validates,
// parses and evaluates them elementwise over [variable, node, mode] arrays.
//
// 🚀 What is montransform?
//
//	A small, dependency-light library plus CLI that brings together:
//		• Arrays: dense [variable, node, mode] float64 blocks
//		• Expressions: arithmetic, ** power, whitelisted numpy-style functions
//		• Transforms: split → validate → ApplyPre / ApplyPost
//		• Monitors: Raw (every step) and SubSample (every N steps)
//		• Configuration: YAML monitor definitions, validated up front
//
// ✨ Why montransform?
//
//   - Fail early – shape and syntax errors surface when a monitor is built,
//     never halfway through a long run
//   - Deterministic – the same transform on the same input is bit-identical
//   - Read-only inputs – every Apply returns fresh arrays
//   - Observable – slog logging and Prometheus counters per monitor
//
// Under the hood, everything is organized under these subpackages:
//
//	ndarray/   — Array, Shape, AllClose and shared validators
//	expr/      — lexer, recursive-descent parser, AST, elementwise evaluator
//	transform/ — Split, Validate/New, ApplyPre, ApplyPost
//	monitor/   — Raw, SubSample, Source, Collect, metrics
//	config/    — YAML schema, env overrides, Build
//	cmd/montransform — validate, apply, run, version
//
// Quick example:
//
//	pre:  "V;W;V**2;W-V"      (variables V, W)
//	post: ";;mon**2;exp(mon)"
//
//	state [2, n, m] ──ApplyPre──▶ sample [4, n, m] ──ApplyPost──▶ sample' [4, n, m]
//
//	go install github.com/katalvlaran/montransform/cmd/montransform@latest
package montransform
