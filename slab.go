package mempool

import (
	"unsafe"
)

// slab is one contiguous growSize-slot region of slot storage, mapped
// outside the Go heap. Slabs form a singly linked chain, newest first,
// and are only ever unmapped all together when the owning pool is
// released.
type slab struct {
	data []byte
	prev *slab
}

// newSlab maps a new slab of the given total size in bytes and links it in
// front of prev. It can potentially error if the memory mapping call fails
func newSlab(size uintptr, prev *slab) (*slab, error) {
	data, err := mapAnon(int(size))
	if err != nil {
		return nil, err
	}
	return &slab{
		data: data,
		prev: prev,
	}, nil
}

// slot returns the address of the slot at the given index
func (s *slab) slot(idx uint, slotSize uintptr) unsafe.Pointer {
	return unsafe.Pointer(&s.data[uintptr(idx)*slotSize])
}

// addr returns this slab's base address
func (s *slab) addr() uintptr {
	return uintptr(unsafe.Pointer(&s.data[0]))
}

// release returns the slab's storage to the system
func (s *slab) release() error {
	return unmapAnon(s.data)
}
