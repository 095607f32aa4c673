package inner

// Option holds either a payload of type T or nothing.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) GetOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// IntoResult maps a present value to Ok with the payload untouched and an
// absent one to Err(Unit{}).
func (o Option[T]) IntoResult() Result[T, Unit] {
	if o.some {
		return Ok[T, Unit](o.value)
	}
	return Err[T, Unit](Unit{})
}

// Ptr returns a pointer to the payload, or nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// FromPtr treats a nil pointer as absent.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// MapOption transforms the payload if present.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(f(o.value))
}
