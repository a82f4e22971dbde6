// Package ndarray provides the three-dimensional float64 array used to carry
// simulator state and monitor samples between the simulator and the monitor
// transform engine.
//
// 🚀 What is an Array?
//
//	A dense, row-major block of float64 values indexed [variable, node, mode].
//	The leading axis is a "slot": a state variable for raw simulator output,
//	or a monitored quantity for recorded samples. The trailing [node, mode]
//	block of one slot is stored contiguously, so a slot can be read or
//	written as a single flat slice.
//
// ✨ Key features:
//   - bounds-checked At/Set returning ErrOutOfRange (never panic)
//   - Slot/SetSlot for whole-slot copies in O(node·mode)
//   - Clone for deep copies; callers' arrays are never aliased
//   - AllClose for tolerance comparisons in tests and pipelines
//
// ⚙️ Usage:
//
//	state, _ := ndarray.FromSlice(2, 4, 1, []float64{
//		0, 1, 2, 3, // variable 0
//		0, 2, 4, 6, // variable 1
//	})
//	v1, _ := state.Slot(1) // [0 2 4 6]
//
// Complexity:
//
//   - At/Set/Shape: O(1)
//   - Slot/SetSlot: O(node·mode)
//   - Clone/AllClose: O(var·node·mode)
package ndarray
