//go:build unix

package mempool

import (
	"golang.org/x/sys/unix"
)

// mapAnon reserves size bytes of zeroed, private, read-write memory that is
// not part of the Go heap.
func mapAnon(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// unmapAnon returns a mapping obtained from mapAnon to the system.
func unmapAnon(data []byte) error {
	return unix.Munmap(data)
}
