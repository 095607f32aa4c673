// Package inner makes descending into an optionally-successful container
// more ergonomic.
//
// The simplest form is a helpful must: Extract(x) yields the success
// payload of a Result or the payload of a Some Option, and panics on the
// failure side with a message that names the source expression passed in,
// e.g.
//
//	inner: unexpected value found inside 'z'
//
// When panicking is not an option, the Or/OrElse forms take a fallback:
//
//	y := inner.ExtractOrElse(x, func(e int) string {
//		return strconv.Itoa(e + 2)
//	})
//
// Tagged-variant types are destructured with the If forms and a Variant
// matcher built by Case or Field:
//
//	asApple := inner.Field[fruit](func(a apple) int { return a.weight })
//	w := inner.ExtractIf(z, asApple)
//
// On mismatch the IfOrElse form hands the fallback the entire unmatched
// value, not a sub-field.
//
// Any type can opt into the generic forms by implementing IntoResult;
// Result is converted by identity and Option maps absence to Err(Unit{}).
//
// Key constructs:
// - Result/Option: the two built-in containers
// - IntoResult: conversion capability for user tagged-variant types
// - Extract/ExtractOr/ExtractOrElse: generic extraction forms
// - ExtractIf/ExtractIfOr/ExtractIfOrElse: variant extraction forms
// - Case/Field: Variant matcher helpers
//
// Fallback funcs are ordinary Go functions: a return inside one returns
// from the fallback only. See package flow for loop- and function-level
// transfer out of a fallback.
package inner
