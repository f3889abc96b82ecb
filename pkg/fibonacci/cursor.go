package fibonacci

// Cursor is transient iteration state over a bounded domain's table. Each
// cursor is owned by the caller that created it and carries no
// synchronization; the underlying table is immutable and shared.
//
// Exhaustion is terminal: once Next has reported ok=false it reports
// ok=false forever. Restarting means requesting a fresh cursor from the
// domain, which always begins again at index 0.
type Cursor[T any] struct {
	table []T
	pos   int
}

// Next returns the next term and advances the cursor. ok is false once the
// table is exhausted.
func (c *Cursor[T]) Next() (v T, ok bool) {
	if c.pos >= len(c.table) {
		var zero T
		return zero, false
	}
	v = c.table[c.pos]
	c.pos++
	return v, true
}

// Index returns the index of the term the next call to Next would yield.
func (c *Cursor[T]) Index() int {
	return c.pos
}

// Remaining returns the number of terms not yet yielded.
func (c *Cursor[T]) Remaining() int {
	return len(c.table) - c.pos
}
