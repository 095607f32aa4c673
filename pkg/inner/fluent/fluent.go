package fluent

import (
	"fmt"

	"github.com/ib-77/inner/pkg/inner"
)

type Chain[T, E any] struct {
	res inner.Result[T, E]
}

func Start[T, E any](r inner.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T any](v T) Chain[T, inner.Unit] {
	return Start(inner.Ok[T, inner.Unit](v))
}

func FromOption[T any](o inner.Option[T]) Chain[T, inner.Unit] {
	return Start(o.IntoResult())
}

func (c Chain[T, E]) Result() inner.Result[T, E] {
	return c.res
}

// Then composes functions that already return a Result.
func (c Chain[T, E]) Then(onOk func(t T) inner.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: onOk(c.res.Value())}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onOk func(t T) T) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: inner.Ok[T, E](onOk(c.res.Value()))}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.Err())
		}
		return c
	}

	if onOk != nil {
		onOk(c.res.Value())
	}
	return c
}

// Or collapses the chain to the successful value, or to the fallback
// value on failure. The failure payload is discarded.
func (c Chain[T, E]) Or(fallback func() T) T {
	if v, ok := c.res.Get(); ok {
		return v
	}
	return fallback()
}

// OrElse collapses the chain to the successful value, or on failure to
// the fallback value computed from the failure payload.
func (c Chain[T, E]) OrElse(fallback func(e E) T) T {
	if v, ok := c.res.Get(); ok {
		return v
	}
	return fallback(c.res.Err())
}

// MustExtract collapses the chain to the successful value, panicking with
// the failure payload otherwise.
func (c Chain[T, E]) MustExtract() T {
	if v, ok := c.res.Get(); ok {
		return v
	}
	panic(fmt.Sprintf("inner: extract on failed result: %v", c.res.Err()))
}

// Finally collapses the chain to a final value via handlers
func (c Chain[T, E]) Finally(onOk func(t T) T, onErr func(e E) T) T {
	if v, ok := c.res.Get(); ok {
		return onOk(v)
	}
	return onErr(c.res.Err())
}
