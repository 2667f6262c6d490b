/*
Package retain implements shared ownership of resources through reference
counting.

A resource is wrapped once with New, which hands out the first Handle.
Every further holder obtains its own Handle with Retain. Each Handle is
released exactly once; releasing it again is a no-op. The resource's free
function runs when the last Handle has been released.

Reference counts are atomic, so handles may be retained and released from
different goroutines. The resource itself is not protected by any lock.
*/
package retain

import (
	"fmt"
	"sync/atomic"
)

type shared[T any] struct {
	value T
	refs  atomic.Int32
	free  func(T)
}

// Handle is one holder's reference to a shared resource.
type Handle[T any] struct {
	shared   *shared[T]
	released atomic.Bool
}

// New wraps a resource and returns the first handle to it. free may be nil.
func New[T any](v T, free func(T)) *Handle[T] {
	s := &shared[T]{value: v, free: free}
	s.refs.Store(1)
	return &Handle[T]{shared: s}
}

// Retain returns an additional handle to the resource. Retaining through a
// released handle is a contract violation and panics.
func (h *Handle[T]) Retain() *Handle[T] {
	h.mustBeLive("retain")
	h.shared.refs.Add(1)
	return &Handle[T]{shared: h.shared}
}

// Release gives up this handle's reference. It reports true if this call
// freed the resource.
func (h *Handle[T]) Release() bool {
	if h == nil || !h.released.CompareAndSwap(false, true) {
		return false
	}
	if h.shared.refs.Add(-1) != 0 {
		return false
	}
	if h.shared.free != nil {
		h.shared.free(h.shared.value)
	}
	return true
}

// Value returns the resource. Calling Value on a released handle panics.
func (h *Handle[T]) Value() T {
	h.mustBeLive("use")
	return h.shared.value
}

// Refs returns the number of live handles to the resource.
func (h *Handle[T]) Refs() int {
	if h == nil {
		return 0
	}
	return int(h.shared.refs.Load())
}

// Released reports whether this handle has been released.
func (h *Handle[T]) Released() bool {
	return h == nil || h.released.Load()
}

func (h *Handle[T]) mustBeLive(op string) {
	if h == nil {
		panic(fmt.Sprintf("retain: %s of nil handle", op))
	}
	if h.released.Load() {
		panic(fmt.Sprintf("retain: %s after release", op))
	}
}
