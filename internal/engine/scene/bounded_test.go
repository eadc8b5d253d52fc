package scene

import "testing"

func TestBounded(t *testing.T) {
	b := NewBounded[int](2)

	if i, ok := b.Push(10); !ok || i != 0 {
		t.Errorf("Push(10) = %d, %v", i, ok)
	}
	first := b.At(0)
	if i, ok := b.Push(20); !ok || i != 1 {
		t.Errorf("Push(20) = %d, %v", i, ok)
	}
	if !b.Full() {
		t.Error("expected Full after 2 pushes")
	}
	if i, ok := b.Push(30); ok || i != -1 {
		t.Errorf("Push on full = %d, %v; want -1, false", i, ok)
	}
	if b.Len() != 2 || b.Cap() != 2 {
		t.Errorf("Len/Cap = %d/%d, want 2/2", b.Len(), b.Cap())
	}
	if first != b.At(0) {
		t.Error("element address changed after push")
	}

	b.Clear()
	if b.Len() != 0 || b.Cap() != 2 {
		t.Errorf("after Clear Len/Cap = %d/%d, want 0/2", b.Len(), b.Cap())
	}
	if b.At(0) != nil {
		t.Error("At(0) on empty sequence should be nil")
	}
}
