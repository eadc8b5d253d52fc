package scene

// Bounded is a slice with a fixed capacity. Push never grows it past the
// capacity given to NewBounded, so element addresses stay stable.
type Bounded[T any] struct {
	items []T
}

// NewBounded returns an empty sequence holding at most capacity items.
func NewBounded[T any](capacity int) Bounded[T] {
	return Bounded[T]{items: make([]T, 0, capacity)}
}

// Push appends v and reports its index. ok is false when the sequence is
// full, in which case nothing changes.
func (b *Bounded[T]) Push(v T) (index int, ok bool) {
	if len(b.items) == cap(b.items) {
		return -1, false
	}
	b.items = append(b.items, v)
	return len(b.items) - 1, true
}

// Len returns the number of items.
func (b *Bounded[T]) Len() int { return len(b.items) }

// Cap returns the fixed capacity.
func (b *Bounded[T]) Cap() int { return cap(b.items) }

// Full reports whether Push would fail.
func (b *Bounded[T]) Full() bool { return len(b.items) == cap(b.items) }

// At returns a pointer to item i for in-place edits, or nil when out of
// range.
func (b *Bounded[T]) At(i int) *T {
	if i < 0 || i >= len(b.items) {
		return nil
	}
	return &b.items[i]
}

// Items returns the live items. The slice aliases the sequence.
func (b *Bounded[T]) Items() []T { return b.items }

// Clear removes every item, keeping the capacity.
func (b *Bounded[T]) Clear() {
	clear(b.items)
	b.items = b.items[:0]
}
