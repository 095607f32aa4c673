package inner

// Unit is the empty failure payload used when absence carries no
// information, e.g. Option conversion.
type Unit struct{}

// IntoResult converts a value into a two-outcome Result. The conversion
// itself cannot fail: failure is expressed as the Err branch of the
// returned Result. Result and Option implement it out of the box;
// implement it on your own tagged-variant types to use them with the
// generic extraction functions.
type IntoResult[T, E any] interface {
	// IntoResult consumes the value and produces its Result form.
	IntoResult() Result[T, E]
}
