// Package flow provides structured non-local transfer for extraction
// fallbacks.
//
// A fallback passed to ExtractOr and friends is an ordinary function, so
// Go's return, break and continue statements inside it act on the
// fallback itself, never on the caller's function or loop. This package
// supplies the escape hatch:
//
// - Exit unwinds to the nearest Boundary, giving function-level early return
// - Break/Continue act on the nearest Each like the loop statements
//
// Signals travel as typed panics and are absorbed only by their matching
// delimiter; anything else crossing a delimiter is re-panicked unchanged.
//
//	flow.Boundary(func() {
//		v := inner.ExtractOrElse(load(), func(e int) int {
//			flow.Exit() // nothing below this line runs
//			return 0
//		})
//		use(v)
//	})
package flow
