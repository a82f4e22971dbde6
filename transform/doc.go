// Package transform is the monitor transform engine: it turns user-supplied
// "pre" and "post" expression lists into a validated, parsed TransformSet and
// applies it to simulator state on every step.
//
// 🚀 Pipeline
//
//	Split     — "V;W;V**2" → ["V", "W", "V**2"]; empty segments are no-ops.
//	Validate  — count vs. declared variables, no-op-only pre, syntax.
//	ApplyPre  — raw state [var, node, mode] → [len(pre), node, mode].
//	ApplyPost — recorded (time, sample) → (time, sample'), one expression per slot.
//
// ✨ Names
//
//   - pre expressions read every state variable as x0, x1, … (and model
//     aliases given with WithVariableNames);
//   - post expressions read their own recorded slot as mon;
//   - functions: see expr.Functions; constants: pi, e.
//
// Every name is resolved at construction. A broken transform therefore
// stops the owning monitor from being built instead of corrupting a long
// run halfway through.
//
// ⚙️ Usage:
//
//	tr, err := transform.New("x0;x1;x0**2;x1-x0", ";;mon**2;exp(mon)")
//	if err != nil {
//		// errors.Is(err, transform.ErrShape) or transform.ErrSyntax
//	}
//	pre, err := tr.ApplyPre(state)
//	post, err := tr.ApplyPost(transform.Sample{Time: t, Data: pre})
//
// Concurrency: a *Transforms is immutable after construction; ApplyPre and
// ApplyPost keep no state between calls and never write into their inputs.
package transform
