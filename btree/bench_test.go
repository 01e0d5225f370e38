package btree

import (
	"math/rand"
	"testing"
)

func benchKeys(n int) []int {
	r := rand.New(rand.NewSource(42))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Int()
	}
	return keys
}

func BenchmarkInsert(b *testing.B) {
	keys := benchKeys(10000)
	for _, v := range []Variant{Classic, Linked} {
		b.Run(v.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				tree, err := NewOrdered[int](32, v)
				if err != nil {
					b.Fatalf("setup failed: %v", err)
				}
				tree.Insert(keys...)
			}
		})
	}
}

func BenchmarkContains(b *testing.B) {
	keys := benchKeys(10000)
	for _, v := range []Variant{Classic, Linked} {
		tree, err := NewOrdered[int](32, v)
		if err != nil {
			b.Fatalf("setup failed: %v", err)
		}
		tree.Insert(keys...)
		b.Run(v.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = tree.Contains(keys[i%len(keys)])
			}
		})
	}
}

func BenchmarkDelete(b *testing.B) {
	keys := benchKeys(10000)
	for _, v := range []Variant{Classic, Linked} {
		b.Run(v.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				tree, err := NewOrdered[int](32, v)
				if err != nil {
					b.Fatalf("setup failed: %v", err)
				}
				tree.Insert(keys...)
				b.StartTimer()
				for _, k := range keys {
					_, _ = tree.Delete(k)
				}
			}
		})
	}
}
