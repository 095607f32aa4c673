package flow

type exitSignal struct{}
type breakSignal struct{}
type continueSignal struct{}

// Boundary runs fn and absorbs an Exit raised inside it. Any other panic
// propagates unchanged.
func Boundary(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(exitSignal); !ok {
				panic(r)
			}
		}
	}()
	fn()
}

// Exit unwinds to the nearest enclosing Boundary. Without one the signal
// escapes as an ordinary panic.
func Exit() {
	panic(exitSignal{})
}

// Each calls body for every item. Break and Continue inside body behave
// like the corresponding loop statements; an Exit crosses the loop to the
// nearest Boundary.
func Each[T any](items []T, body func(item T)) {
	for _, item := range items {
		if !iterate(item, body) {
			return
		}
	}
}

// iterate reports whether the loop should advance to the next item.
func iterate[T any](item T, body func(item T)) (next bool) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case continueSignal:
				next = true
			case breakSignal:
				next = false
			default:
				panic(r)
			}
		}
	}()
	body(item)
	return true
}

// Break ends the nearest enclosing Each.
func Break() {
	panic(breakSignal{})
}

// Continue advances the nearest enclosing Each to its next item.
func Continue() {
	panic(continueSignal{})
}
