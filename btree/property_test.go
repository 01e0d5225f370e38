package btree

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./btree -run TestRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test ./btree -run '^$' -fuzz FuzzTreeOperations -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test ./btree -run 'FuzzTreeOperations/<id>'

func shuffled(keys []int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	out := slices.Clone(keys)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// model is a sorted multiset of keys, used as the reference for the tree.
type model []int

func (m model) insert(k int) model {
	i, _ := slices.BinarySearch(m, k)
	return slices.Insert(m, i, k)
}

func (m model) delete(k int) (model, bool) {
	i, found := slices.BinarySearch(m, k)
	if !found {
		return m, false
	}
	return slices.Delete(m, i, i+1), true
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], m model) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid: %v\n%s", err, tree)
	}
	got := tree.Keys()
	if len(got) != len(m) || tree.Len() != len(m) {
		t.Fatalf("model length mismatch: got=%d len=%d want=%d", len(got), tree.Len(), len(m))
	}
	for i := range m {
		if got[i] != m[i] {
			t.Fatalf("model mismatch at %d: got=%d want=%d", i, got[i], m[i])
		}
	}
}

type opKind uint8

const (
	opInsert opKind = iota
	opDelete
	opDeleteMissing
)

func applyOp(t *testing.T, tree *Tree[int], m model, op opKind, key int) model {
	t.Helper()
	switch op {
	case opInsert:
		tree.Insert(key)
		return m.insert(key)
	case opDelete:
		var ok bool
		m, ok = m.delete(key)
		k, err := tree.Delete(key)
		if ok && (err != nil || k != key) {
			t.Fatalf("delete %d: got %d, %v", key, k, err)
		}
		if !ok && !errors.Is(err, ErrKeyNotFound) {
			t.Fatalf("delete %d of absent key: expected ErrKeyNotFound, got %v", key, err)
		}
	case opDeleteMissing:
		if _, err := tree.Delete(-key - 1); !errors.Is(err, ErrKeyNotFound) {
			t.Fatalf("delete of negative key: expected ErrKeyNotFound, got %v", err)
		}
	}
	return m
}

func TestRandomizedProperty(t *testing.T) {
	for _, v := range []Variant{Classic, Linked} {
		for order := MinOrder; order <= 11; order++ {
			r := rand.New(rand.NewSource(int64(order)*7919 + int64(v)))
			tree := newIntTree(t, order, v)
			var m model
			for step := 0; step < 600; step++ {
				key := r.Intn(120)
				var op opKind
				switch n := r.Intn(10); {
				case n < 5:
					op = opInsert
				case n < 9:
					op = opDelete
				default:
					op = opDeleteMissing
				}
				m = applyOp(t, tree, m, op, key)
				assertTreeMatchesModel(t, tree, m)
			}
			// drain
			for _, k := range shuffled(m, int64(order)) {
				m = applyOp(t, tree, m, opDelete, k)
				assertTreeMatchesModel(t, tree, m)
			}
			if tree.nodes.live != 1 {
				t.Fatalf("%s/%d: %d nodes live after drain", v, order, tree.nodes.live)
			}
		}
	}
}

func FuzzTreeOperations(f *testing.F) {
	f.Add([]byte{3, 0, 1, 2, 3, 4, 5, 6, 7, 0x81, 0x82})
	f.Add([]byte{4, 1, 10, 20, 30, 40, 50, 60, 70, 80, 0xa8, 0xb2})
	f.Add([]byte{11, 0, 0, 0, 0, 0x80, 0x80, 0xff})
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 2 {
			return
		}
		order := MinOrder + int(data[0])%9
		variant := Variant(data[1] % 2)
		tree := newIntTree(t, order, variant)
		var m model
		for _, b := range data[2:] {
			key := int(b & 0x3f)
			op := opInsert
			if b&0x80 != 0 {
				op = opDelete
			}
			m = applyOp(t, tree, m, op, key)
			assertTreeMatchesModel(t, tree, m)
		}
	})
}
