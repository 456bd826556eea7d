package cart

import "slices"

// Action is a cart transition understood by Reduce.
type Action interface {
	apply(State) State
}

// Add merges Quantity (default 1) into the line with the same key, or appends Line.
type Add struct {
	Line     Line
	Quantity int
}

// Remove deletes the line with Key.
type Remove struct {
	Key Key
}

// UpdateQuantity sets a line's quantity; zero or below removes it.
type UpdateQuantity struct {
	Key      Key
	Quantity int
}

type Clear struct{}

// Subtract takes each of Lines' quantities off the line with the same key, removing lines that
// reach zero. Lines absent from the cart are skipped.
type Subtract struct {
	Lines []Line
}

// Load replaces the cart with Lines, normalized the way a persisted cart is decoded, and
// recomputes the aggregates.
type Load struct {
	Lines []Line
}

// Reduce returns the state after a. s is never modified; an action that does not apply
// (unknown key) returns s unchanged.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

func (a Add) apply(s State) State {
	qty := a.Quantity
	if qty <= 0 {
		qty = 1
	}
	next := State{Items: slices.Clone(s.Items), TotalItems: s.TotalItems + qty}
	if i := s.Find(a.Line.Key()); i >= 0 {
		next.Items[i].Quantity += qty
		next.TotalCents = s.TotalCents + int64(qty)*next.Items[i].UnitCents()
		return next
	}
	line := a.Line
	line.Quantity = qty
	next.Items = append(next.Items, line)
	next.TotalCents = s.TotalCents + line.SubtotalCents()
	return next
}

func (a Remove) apply(s State) State {
	i := s.Find(a.Key)
	if i < 0 {
		return s
	}
	removed := s.Items[i]
	return State{
		Items:      slices.Delete(slices.Clone(s.Items), i, i+1),
		TotalItems: s.TotalItems - removed.Quantity,
		TotalCents: s.TotalCents - removed.SubtotalCents(),
	}
}

func (a UpdateQuantity) apply(s State) State {
	if a.Quantity <= 0 {
		return Remove{Key: a.Key}.apply(s)
	}
	i := s.Find(a.Key)
	if i < 0 {
		return s
	}
	old := s.Items[i]
	delta := a.Quantity - old.Quantity
	next := State{
		Items:      slices.Clone(s.Items),
		TotalItems: s.TotalItems + delta,
		TotalCents: s.TotalCents + int64(delta)*old.UnitCents(),
	}
	next.Items[i].Quantity = a.Quantity
	return next
}

func (Clear) apply(State) State {
	return State{Items: []Line{}}
}

func (a Load) apply(State) State {
	return Recompute(Normalize(a.Lines))
}

func (a Subtract) apply(s State) State {
	next := s
	for _, l := range a.Lines {
		i := next.Find(l.Key())
		if i < 0 {
			continue
		}
		next = UpdateQuantity{Key: l.Key(), Quantity: next.Items[i].Quantity - l.Quantity}.apply(next)
	}
	return next
}
