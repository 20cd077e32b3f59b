package game

// Pool is a growable store of reusable entities.
//
// Active entities occupy indices [0, Len()). Released entities stay allocated
// past the active range and are handed out again by Acquire, so steady-state
// frames do not allocate.
type Pool[T any] struct {
	items  []*T
	active int
}

// NewPool creates a pool with capacity pre-allocated entities.
func NewPool[T any](capacity int) *Pool[T] {
	p := &Pool[T]{items: make([]*T, capacity)}
	for i := range p.items {
		p.items[i] = new(T)
	}
	return p
}

// Acquire returns a zeroed entity appended to the active range.
// The pool grows when every entity is in use.
func (p *Pool[T]) Acquire() *T {
	if p.active == len(p.items) {
		p.items = append(p.items, new(T))
	}
	item := p.items[p.active]
	var zero T
	*item = zero
	p.active++
	return item
}

// Len returns the number of active entities.
func (p *Pool[T]) Len() int {
	return p.active
}

// At returns the i-th active entity.
func (p *Pool[T]) At(i int) *T {
	return p.items[i]
}

// ForEach visits active entities in order.
func (p *Pool[T]) ForEach(fn func(*T)) {
	for i := 0; i < p.active; i++ {
		fn(p.items[i])
	}
}

// Retain keeps the entities for which keep returns true and releases the rest.
// Survivors keep their relative order.
func (p *Pool[T]) Retain(keep func(*T) bool) {
	n := 0
	for i := 0; i < p.active; i++ {
		if keep(p.items[i]) {
			p.items[n], p.items[i] = p.items[i], p.items[n]
			n++
		}
	}
	p.active = n
}

// Clear releases every entity.
func (p *Pool[T]) Clear() {
	p.active = 0
}

// Values copies the active entities.
func (p *Pool[T]) Values() []T {
	out := make([]T, p.active)
	for i := 0; i < p.active; i++ {
		out[i] = *p.items[i]
	}
	return out
}
