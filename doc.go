// Package mempool implements a fixed-size-object memory pool for use inside
// node-based containers (lists, trees, graphs) where single-object
// allocation and deallocation dominate runtime cost.
//
// A MemoryPool[T] hands out one element-sized slot per call in O(1), backed
// by slabs of growSize slots which are carved out sequentially. Freed slots
// go onto an intrusive free list threaded through the slot storage itself
// and are reused ahead of any fresh slab carving. Slabs live outside the Go
// heap, in anonymous memory mappings, and are returned to the system only
// when the pool is released.
//
// An Allocator[T] wraps one pool behind the conventional allocator contract
// (Allocate/Deallocate/Construct/Destroy plus Rebind) so generic containers
// can use the pool transparently.
//
// Hard preconditions, not checked at runtime:
//
//   - A pool and its allocator are single-threaded. No operation may be
//     invoked concurrently on the same instance without external locking.
//   - Deallocate must only be given pointers returned by Allocate on the
//     same pool, exactly once each. Double frees and foreign pointers
//     corrupt the free list and are not detected.
//   - The element type must not contain pointers into the Go heap. Slab
//     storage is never scanned by the garbage collector, so a pointer
//     stored there does not keep its target alive. Pointers to other pool
//     slots are fine, their storage neither moves nor gets collected.
//
// These are deliberate: per-slot bookkeeping and locking would defeat the
// latency profile the pool exists for.
package mempool
