package btree

import (
	"slices"
	"testing"
)

func TestInsertAtShiftsTail(t *testing.T) {
	s := make([]int, 0, 4)
	s = insertAt(s, 0, 2)
	s = insertAt(s, 0, 1)
	s = insertAt(s, 2, 4)
	s = insertAt(s, 2, 3)
	if !slices.Equal(s, []int{1, 2, 3, 4}) {
		t.Fatalf("unexpected slice %v", s)
	}
}

func TestRemoveAtClearsVacatedSlot(t *testing.T) {
	s := []string{"a", "b", "c"}
	s, v := removeAt(s, 1)
	if v != "b" || !slices.Equal(s, []string{"a", "c"}) {
		t.Fatalf("removeAt: got %v, %q", s, v)
	}
	if s[:3][2] != "" {
		t.Fatalf("vacated slot retains %q", s[:3][2])
	}
	s, v = pop(s)
	if v != "c" || len(s) != 1 {
		t.Fatalf("pop: got %v, %q", s, v)
	}
}

func TestTruncateClearsTail(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	s = truncate(s, 1)
	if len(s) != 1 || s[:4][3] != "" {
		t.Fatalf("truncate left %v", s[:4])
	}
}

func TestArenaRecyclesReleasedNodes(t *testing.T) {
	a := newArena[int](4)
	id1 := a.alloc(leafKind)
	id2 := a.alloc(innerKind)
	if id1 == nilNode || id2 == nilNode || id1 == id2 {
		t.Fatalf("unexpected handles %d, %d", id1, id2)
	}
	a.at(id1).keys = append(a.at(id1).keys, 1, 2, 3)
	a.at(id1).next = id2
	a.release(id1)
	if a.live != 1 {
		t.Fatalf("expected 1 live node, got %d", a.live)
	}
	id3 := a.alloc(innerKind)
	if id3 != id1 {
		t.Fatalf("expected released handle %d to be recycled, got %d", id1, id3)
	}
	n := a.at(id3)
	if len(n.keys) != 0 || n.next != nilNode || n.isLeaf() {
		t.Fatalf("recycled node not reset: %+v", n)
	}
}

func TestAssertPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	newArena[int](4).at(nilNode)
}
