package gateway

// Result carries the outcome of a store operation and which path produced
// it: the store itself, or the degraded fallback taken when the store was
// unreachable or not configured. Callers and tests branch on IsDegraded
// instead of inferring the path from logs.
type Result[T any] struct {
	value    T
	degraded bool
	reason   string
}

// Ok wraps a value produced by the backing store.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Degraded wraps the safe placeholder substituted for a store failure,
// with the reason the fallback was taken.
func Degraded[T any](fallback T, reason string) Result[T] {
	return Result[T]{value: fallback, degraded: true, reason: reason}
}

// Value returns the carried value. For degraded results this is the safe
// placeholder: an empty collection, the unchanged input entity, or false.
func (r Result[T]) Value() T {
	return r.value
}

// IsDegraded reports whether the fallback path was taken.
func (r Result[T]) IsDegraded() bool {
	return r.degraded
}

// Reason returns why the fallback was taken, empty for ok results.
func (r Result[T]) Reason() string {
	return r.reason
}
