// Package fluent provides a small fluent Chain[T, E] for synchronous
// composition of Result values ending in extraction.
//
// Key operations:
// - Start/FromValue/FromOption: begin a chain
// - Then: switch to a new Result via a function
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - Or/OrElse/MustExtract/Finally: collapse the chain into a final value
//
// Fluent is ideal for small services or tests where lightweight
// synchronous chaining improves readability.
package fluent
