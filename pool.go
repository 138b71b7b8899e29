package mempool

import (
	"fmt"
	"strings"
	"unsafe"
)

// ptrSize is the size of one free-list link word
const ptrSize = unsafe.Sizeof(uintptr(0))

// noCopy makes `go vet` flag copies of the structs that embed it.
// Pools own their slabs exclusively, a copy would double-release them.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// MemoryPool is a pool of fixed-size slots for elements of type T. It hands
// out exactly one slot per Allocate call and recycles deallocated slots
// through an intrusive free list before carving fresh slots out of the
// newest slab.
//
// The zero value is not usable, pools must be created with New. A pool must
// not be copied after first use.
type MemoryPool[T any] struct {
	noCopy noCopy

	// freeHead is the address of the most recently deallocated slot, 0
	// when the free list is empty. The first ptrSize bytes of each free
	// slot hold the address of the next free slot; once a slot is live
	// those bytes belong to the element.
	freeHead uintptr

	head *slab
	used uint // slots carved from the head slab, == growSize when exhausted

	growSize uint
	slotSize uintptr

	slabs     int
	freeSlots int
}

// New initializes a new pool for elements of type T which grows by growSize
// slots at a time. A growSize of 0 selects Config.GrowSize.
func New[T any](growSize uint) *MemoryPool[T] {
	if growSize == 0 {
		growSize = Config.GrowSize
	}

	// a slot must be able to hold either one element or one free-list link
	var zero T
	slotSize := unsafe.Sizeof(zero)
	if slotSize < ptrSize {
		slotSize = ptrSize
	}

	return &MemoryPool[T]{
		growSize: growSize,
		slotSize: slotSize,
		// start exhausted so the first Allocate maps the first slab
		used: growSize,
	}
}

// Allocate returns a pointer to one uninitialized slot. It reuses the most
// recently deallocated slot if there is one, otherwise it carves the next
// slot out of the newest slab, mapping a new slab first if the newest one
// is exhausted.
// The only possible error is a failed memory mapping while growing; no
// state is mutated in that case and there is no retry.
func (p *MemoryPool[T]) Allocate() (*T, error) {
	if p.freeHead != 0 {
		slot := p.freeHead
		p.freeHead = *(*uintptr)(unsafe.Pointer(slot))
		p.freeSlots--
		return (*T)(unsafe.Pointer(slot)), nil
	}

	if p.used == p.growSize {
		s, err := newSlab(p.slotSize*uintptr(p.growSize), p.head)
		if err != nil {
			return nil, err
		}
		p.head = s
		p.used = 0
		p.slabs++
	}

	slot := p.head.slot(p.used, p.slotSize)
	p.used++
	return (*T)(slot), nil
}

// Deallocate pushes the slot holding obj onto the free list. The slot is
// kept for reuse, no storage is returned to the system.
//
// obj must have been returned by Allocate on this pool and must not have
// been deallocated already, see the package documentation.
func (p *MemoryPool[T]) Deallocate(obj *T) {
	slot := uintptr(unsafe.Pointer(obj))
	*(*uintptr)(unsafe.Pointer(slot)) = p.freeHead
	p.freeHead = slot
	p.freeSlots++
}

// Release unmaps every slab in one pass and resets the pool to its initial
// empty state, after which it can be used again. This is the only point
// where slab storage is returned to the system. No element is destroyed by
// this call; elements owning resources must be destroyed explicitly before
// releasing the pool.
func (p *MemoryPool[T]) Release() error {
	var firstErr error
	for s := p.head; s != nil; s = s.prev {
		if err := s.release(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	p.head = nil
	p.freeHead = 0
	p.used = p.growSize
	p.slabs = 0
	p.freeSlots = 0

	return firstErr
}

// NumSlabs returns the number of slabs the pool currently owns
func (p *MemoryPool[T]) NumSlabs() int {
	return p.slabs
}

// FreeSlots returns the number of slots currently on the free list
func (p *MemoryPool[T]) FreeSlots() int {
	return p.freeSlots
}

// SlotSize returns the size of one slot in bytes
func (p *MemoryPool[T]) SlotSize() uintptr {
	return p.slotSize
}

// GrowSize returns the number of slots the pool adds per slab
func (p *MemoryPool[T]) GrowSize() uint {
	return p.growSize
}

// ReservedBytes returns the total number of bytes currently mapped by the
// pool, live and free slots alike
func (p *MemoryPool[T]) ReservedBytes() uintptr {
	return uintptr(p.slabs) * p.slotSize * uintptr(p.growSize)
}

// String creates a multi-line string which illustrates the pool state in a
// human-readable format
func (p *MemoryPool[T]) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "-------------------------------\n")
	fmt.Fprintf(&b, "Slot Size: %d\n", p.slotSize)
	fmt.Fprintf(&b, "Grow Size: %d\n", p.growSize)
	fmt.Fprintf(&b, "Slabs: %d\n", p.slabs)
	fmt.Fprintf(&b, "Cursor: %d\n", p.used)
	fmt.Fprintf(&b, "Free Slots: %d\n", p.freeSlots)

	for s := p.head; s != nil; s = s.prev {
		fmt.Fprintf(&b, "Slab Addr: %d\n", s.addr())
	}

	return b.String()
}
