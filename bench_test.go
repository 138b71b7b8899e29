package mempool

import (
	"testing"
)

type benchElem struct {
	a, b, c uint64
}

var benchSink *benchElem

func BenchmarkPoolAllocateDeallocate(b *testing.B) {
	pool := New[benchElem](1024)
	defer pool.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		obj, err := pool.Allocate()
		if err != nil {
			b.Fatal(err)
		}
		obj.a = uint64(i)
		pool.Deallocate(obj)
	}
}

func BenchmarkHeapAllocate(b *testing.B) {
	for i := 0; i < b.N; i++ {
		obj := new(benchElem)
		obj.a = uint64(i)
		benchSink = obj
	}
}

func BenchmarkPoolBulkAllocate(b *testing.B) {
	pool := New[benchElem](1024)
	defer pool.Release()
	objs := make([]*benchElem, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range objs {
			obj, err := pool.Allocate()
			if err != nil {
				b.Fatal(err)
			}
			objs[j] = obj
		}
		for j := range objs {
			pool.Deallocate(objs[j])
		}
	}
}
