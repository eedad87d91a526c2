package vango

import (
	"testing"
)

type testListener struct {
	id    uint64
	dirty int
}

func newTestListener() *testListener {
	return &testListener{id: nextID()}
}

func (l *testListener) MarkDirty() { l.dirty++ }
func (l *testListener) ID() uint64 { return l.id }

func TestOwnerBasic(t *testing.T) {
	owner := NewOwner(nil)

	if owner.ID() == 0 {
		t.Error("owner should have non-zero ID")
	}

	if owner.parent != nil {
		t.Error("root owner should have nil parent")
	}

	if owner.IsDisposed() {
		t.Error("new owner should not be disposed")
	}
}

func TestOwnerHierarchy(t *testing.T) {
	root := NewOwner(nil)
	child1 := NewOwner(root)
	child2 := NewOwner(root)
	grandchild := NewOwner(child1)

	if child1.parent != root {
		t.Error("child1 parent should be root")
	}
	if child2.parent != root {
		t.Error("child2 parent should be root")
	}
	if grandchild.parent != child1 {
		t.Error("grandchild parent should be child1")
	}
	if len(root.children) != 2 {
		t.Errorf("expected 2 children, got %d", len(root.children))
	}
}

func TestOwnerDisposeOrder(t *testing.T) {
	root := NewOwner(nil)
	child1 := NewOwner(root)
	child2 := NewOwner(root)
	grandchild := NewOwner(child1)

	var order []string
	root.OnCleanup(func() { order = append(order, "root-a") })
	root.OnCleanup(func() { order = append(order, "root-b") })
	child1.OnCleanup(func() { order = append(order, "child1") })
	child2.OnCleanup(func() { order = append(order, "child2") })
	grandchild.OnCleanup(func() { order = append(order, "grandchild") })

	root.Dispose()

	want := []string{"child2", "grandchild", "child1", "root-b", "root-a"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], order[i])
		}
	}

	for _, o := range []*Owner{root, child1, child2, grandchild} {
		if !o.IsDisposed() {
			t.Errorf("owner %d should be disposed", o.ID())
		}
	}
}

func TestOwnerDisposeIdempotent(t *testing.T) {
	owner := NewOwner(nil)
	calls := 0
	owner.OnCleanup(func() { calls++ })

	owner.Dispose()
	owner.Dispose()

	if calls != 1 {
		t.Errorf("cleanup should run once, got %d", calls)
	}
}

func TestOwnerCleanupAfterDispose(t *testing.T) {
	owner := NewOwner(nil)
	owner.Dispose()

	ran := false
	owner.OnCleanup(func() { ran = true })
	if !ran {
		t.Error("cleanup registered after dispose should run immediately")
	}
}

func TestOwnerDisposeDetachesFromParent(t *testing.T) {
	root := NewOwner(nil)
	child := NewOwner(root)
	child.Dispose()

	if len(root.children) != 0 {
		t.Errorf("disposed child should be removed from parent, got %d children", len(root.children))
	}
}

func TestOwnerValues(t *testing.T) {
	root := NewOwner(nil)
	mid := NewOwner(root)
	leaf := NewOwner(mid)

	root.SetValue("k", "root")
	if leaf.GetValue("k") != "root" {
		t.Errorf("expected inherited value, got %v", leaf.GetValue("k"))
	}

	mid.SetValue("k", "mid")
	if leaf.GetValue("k") != "mid" {
		t.Errorf("expected nearest value, got %v", leaf.GetValue("k"))
	}
	if root.GetValue("k") != "root" {
		t.Errorf("ancestor should be unaffected, got %v", root.GetValue("k"))
	}
	if leaf.GetValue("missing") != nil {
		t.Error("missing key should be nil")
	}
}

func TestOwnerListener(t *testing.T) {
	root := NewOwner(nil)
	scope := NewOwner(root)
	l := newTestListener()
	scope.listener = l
	leaf := NewOwner(scope)

	if leaf.listenerScope() != scope {
		t.Error("leaf should find listener on ancestor")
	}
	if root.listenerScope() != nil {
		t.Error("root should have no listener")
	}

	var nilOwner *Owner
	if nilOwner.listenerScope() != nil {
		t.Error("nil owner should have no listener")
	}
}
