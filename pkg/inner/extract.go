package inner

import (
	"fmt"
	"path/filepath"

	"github.com/ib-77/inner/pkg/inner/callsite"
)

// Variant matches one constructor of a tagged-variant type V and yields
// its payload. A matcher reports false when the value is a different
// variant; the value itself is never modified.
type Variant[V, T any] func(V) (T, bool)

// Case matches values whose concrete type is C and yields the whole
// variant value.
func Case[V, C any]() Variant[V, C] {
	return func(v V) (C, bool) {
		c, ok := any(v).(C)
		return c, ok
	}
}

// Field matches values of concrete type C and yields the payload selected
// by get. For multi-field variants get may assemble several fields into
// one value.
func Field[V, C, T any](get func(C) T) Variant[V, T] {
	return func(v V) (T, bool) {
		c, ok := any(v).(C)
		if !ok {
			var zero T
			return zero, false
		}
		return get(c), true
	}
}

// Extract yields the success payload of v. On failure it panics with a
// message naming the source expression of v, not its runtime value.
func Extract[T, E any](v IntoResult[T, E]) T {
	r := v.IntoResult()
	if r.IsOk() {
		return r.Value()
	}
	panic(mismatch("Extract"))
}

// ExtractOr yields the success payload of v, or the fallback value on
// failure. The failure payload is discarded.
func ExtractOr[T, E any](v IntoResult[T, E], fallback func() T) T {
	r := v.IntoResult()
	if r.IsOk() {
		return r.Value()
	}
	return fallback()
}

// ExtractOrElse yields the success payload of v, or on failure the
// fallback value computed from the failure payload.
func ExtractOrElse[T, E any](v IntoResult[T, E], fallback func(e E) T) T {
	r := v.IntoResult()
	if r.IsOk() {
		return r.Value()
	}
	return fallback(r.Err())
}

// ExtractIf yields the payload of v when match recognizes its variant.
// On mismatch it panics with a message naming the source expression of v.
func ExtractIf[V, T any](v V, match Variant[V, T]) T {
	if q, ok := match(v); ok {
		return q
	}
	panic(mismatch("ExtractIf"))
}

// ExtractIfOr yields the payload of v when match recognizes its variant,
// or the fallback value on mismatch.
func ExtractIfOr[V, T any](v V, match Variant[V, T], fallback func() T) T {
	if q, ok := match(v); ok {
		return q
	}
	return fallback()
}

// ExtractIfOrElse yields the payload of v when match recognizes its
// variant. On mismatch the fallback receives the entire unmatched value,
// not a sub-field.
func ExtractIfOrElse[V, T any](v V, match Variant[V, T], fallback func(v V) T) T {
	if q, ok := match(v); ok {
		return q
	}
	return fallback(v)
}

func mismatch(fn string) string {
	c, ok := callsite.Arg(fn, 0)
	switch {
	case ok && c.Text != "":
		return fmt.Sprintf("inner: unexpected value found inside '%s'", c.Text)
	case ok:
		return fmt.Sprintf("inner: unexpected value at %s:%d", filepath.Base(c.File), c.Line)
	default:
		return "inner: unexpected value"
	}
}
