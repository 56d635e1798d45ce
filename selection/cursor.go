package selection

// Direction is a move step within a stage's candidate list
type Direction int8

const (
	Prev Direction = -1
	Next Direction = 1
)

// Item is one candidate; Key identifies it across repopulations
type Item[T any] struct {
	Key   string
	Label string
	Value T
}

// Cursor tracks the candidates, highlight and lock of one stage
type Cursor[T any] struct {
	items     []Item[T]
	highlight int // -1 when nothing is highlighted
	locked    bool
}

func newCursor[T any]() *Cursor[T] {
	return &Cursor[T]{highlight: -1}
}

// Len returns the candidate count
func (c *Cursor[T]) Len() int { return len(c.items) }

// Locked reports whether the highlighted choice is committed
func (c *Cursor[T]) Locked() bool { return c.locked }

// Selected returns the highlighted index
func (c *Cursor[T]) Selected() (int, bool) {
	if c.highlight < 0 || c.highlight >= len(c.items) {
		return 0, false
	}
	return c.highlight, true
}

// Value returns the highlighted candidate's value
func (c *Cursor[T]) Value() (T, bool) {
	i, ok := c.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i].Value, true
}

// Labels returns a copy of the candidate labels
func (c *Cursor[T]) Labels() []string {
	labels := make([]string, len(c.items))
	for i, it := range c.items {
		labels[i] = it.Label
	}
	return labels
}

// Move steps the highlight, wrapping at both ends
// With no highlight either direction lands on the first candidate
func (c *Cursor[T]) Move(dir Direction) {
	n := len(c.items)
	if n == 0 {
		return
	}
	i, ok := c.Selected()
	switch {
	case !ok:
		c.highlight = 0
	case dir == Next:
		c.highlight = (i + 1) % n
	case dir == Prev:
		c.highlight = (i - 1 + n) % n
	}
}

// SetItems replaces the candidates
// The highlight follows its key to the new index, or is cleared if the key is gone
func (c *Cursor[T]) SetItems(items []Item[T]) {
	key, had := c.selectedKey()
	c.items = items
	c.highlight = -1
	if !had {
		return
	}
	for i, it := range items {
		if it.Key == key {
			c.highlight = i
			return
		}
	}
}

func (c *Cursor[T]) selectedKey() (string, bool) {
	i, ok := c.Selected()
	if !ok {
		return "", false
	}
	return c.items[i].Key, true
}

func (c *Cursor[T]) setLocked(v bool) { c.locked = v }

func (c *Cursor[T]) clearHighlight() { c.highlight = -1 }

// reset unlocks and clears the highlight
func (c *Cursor[T]) reset() {
	c.locked = false
	c.highlight = -1
}
