package mempool

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrBadAlloc is the failure every Allocate error wraps, whether the
// request violated the single-object contract or slab storage could not be
// obtained. Callers that need to distinguish nothing more than "allocation
// failed" can test against it with errors.Is.
var ErrBadAlloc = errors.New("mempool: bad alloc")

// Destructor is implemented by element types that own resources which must
// be torn down explicitly. Allocator.Destroy invokes it; the pool itself
// never does.
type Destructor interface {
	Destruct()
}

// Allocator presents one MemoryPool through the conventional allocator
// contract consumed by generic containers: single-object allocate with an
// optional locality hint, paired deallocate, and an explicit
// construct/destroy split.
//
// Every allocator owns its backing pool exclusively, including the ones
// produced by Rebind. An allocator must not be copied after first use.
type Allocator[T any] struct {
	noCopy noCopy

	pool *MemoryPool[T]
}

// NewAllocator returns an allocator backed by a fresh pool which grows by
// growSize slots at a time. A growSize of 0 selects Config.GrowSize.
func NewAllocator[T any](growSize uint) *Allocator[T] {
	return &Allocator[T]{
		pool: New[T](growSize),
	}
}

// Allocate returns storage for n objects of type T. The backing pool serves
// single objects only, so any n other than 1, or a non-nil locality hint,
// fails with ErrBadAlloc without touching the pool. There is no fallback to
// a general-purpose allocator; silently serving such requests would hide
// that the caller left the pool's fast path.
func (a *Allocator[T]) Allocate(n int, hint unsafe.Pointer) (*T, error) {
	if n != 1 || hint != nil {
		return nil, fmt.Errorf("%w: pool serves single objects without placement hints, got n=%d hint=%p", ErrBadAlloc, n, hint)
	}

	obj, err := a.pool.Allocate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAlloc, err)
	}
	return obj, nil
}

// Deallocate returns the slot holding obj to the pool. n is part of the
// caller contract established by Allocate and is expected to be 1; it is
// not validated.
func (a *Allocator[T]) Deallocate(obj *T, n int) {
	a.pool.Deallocate(obj)
}

// Construct constructs one element in place at obj from val. The slot's
// storage is reused as handed out by Allocate, nothing is allocated.
func (a *Allocator[T]) Construct(obj *T, val T) {
	*obj = val
}

// Destroy ends the lifetime of the element at obj without releasing its
// slot; releasing is a separate Deallocate call. If the element implements
// Destructor its Destruct method is invoked, otherwise Destroy is a no-op.
// Destroy before Deallocate, and never destroy twice.
func (a *Allocator[T]) Destroy(obj *T) {
	if d, ok := any(obj).(Destructor); ok {
		d.Destruct()
	}
}

// Release tears down the owned pool, returning all slab storage to the
// system. See MemoryPool.Release.
func (a *Allocator[T]) Release() error {
	return a.pool.Release()
}

// Rebind returns an allocator for element type U with the same grow size as
// a. Node-based containers use this to allocate an internal node type
// distinct from the user-visible value type from a structurally identical
// pool. The rebound allocator owns an independent backing pool; nothing is
// shared with a.
func Rebind[U, T any](a *Allocator[T]) *Allocator[U] {
	return NewAllocator[U](a.pool.growSize)
}
