package views

// pipeline is embedded by every view type and provides the chainable
// transformation methods. Each call consumes the receiver: ownership of the
// wrapped sequence conceptually transfers into the returned view, and the
// consumed view must not be used again. A second chaining call panics.
//
// The mixin's Map is endomorphic; a projection to a different element type
// is the free function Map, since Go methods cannot introduce type
// parameters.
type pipeline[E any] struct {
	self     Sequence[E]
	consumed bool
}

// bind wires the mixin back to the concrete view embedding it. Called once
// by every factory.
func (p *pipeline[E]) bind(self Sequence[E]) {
	p.self = self
}

// take hands out the wrapped view exactly once.
func (p *pipeline[E]) take() Sequence[E] {
	if p.consumed {
		panic("views: view already consumed by a chaining call")
	}
	p.consumed = true
	return p.self
}

// Filter consumes the view and wraps it in a predicate view.
func (p *pipeline[E]) Filter(pred func(E) bool) *Filtered[E] {
	return Filter(p.take(), pred)
}

// Map consumes the view and wraps it in a same-type projection view.
func (p *pipeline[E]) Map(f func(E) E) *Mapped[E, E] {
	return Map(p.take(), f)
}

// Reverse consumes the view and wraps it in a reversal view. It panics if
// the view cannot be traversed backward.
func (p *pipeline[E]) Reverse() *Reversed[E] {
	src := p.take()
	b, ok := src.(Bidirectional[E])
	if !ok {
		panic("views: Reverse of forward-only sequence")
	}
	return Reverse(b)
}

// Enumerate consumes the view and wraps it in a position-pairing view.
func (p *pipeline[E]) Enumerate() *Enumerated[E] {
	return Enumerate(p.take())
}
