// Package callsite resolves the literal source text of arguments at a
// calling site, so extraction panics can name the expression that held
// the unexpected value instead of dumping its runtime value.
//
// Resolution walks the stack for the named function's frame, parses the
// caller's source file once (cached), and slices the argument text out of
// the matching call expression. When the source is unavailable the caller
// falls back to file:line.
package callsite
