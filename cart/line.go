// Package cart is the storefront's single cart: canonical lines keyed by product and variant,
// a pure reducer over them, and a store that persists and broadcasts every change.
package cart

import (
	"encoding/json"
	"slices"

	"storefront.GO/catalog"
)

// Key identifies a cart line. A line added without a variant has empty Color and Size.
type Key struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

// Line is one product variant in the cart. Price is the effective unit price captured when the
// line was first added.
type Line struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
	Color    string  `json:"color,omitempty"`
	Size     string  `json:"size,omitempty"`
}

// NewLine captures p's effective price and display fields for one variant.
func NewLine(p catalog.Product, color, size string) Line {
	return Line{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.EffectivePrice(),
		Image:    p.ImageURL,
		Quantity: 1,
		Color:    color,
		Size:     size,
	}
}

func (l Line) Key() Key {
	return Key{ID: l.ID, Color: l.Color, Size: l.Size}
}

// UnitCents is Price in cents.
func (l Line) UnitCents() int64 {
	return catalog.ToCents(l.Price)
}

// SubtotalCents is quantity × unit price.
func (l Line) SubtotalCents() int64 {
	return int64(l.Quantity) * l.UnitCents()
}

// State is the cart contents plus aggregates kept equal to a fresh recomputation from Items.
type State struct {
	Items      []Line
	TotalItems int
	TotalCents int64
}

func (s State) TotalPrice() float64 {
	return catalog.FromCents(s.TotalCents)
}

func (s State) Empty() bool {
	return len(s.Items) == 0
}

// Find returns the index of the line with key k, or -1.
func (s State) Find(k Key) int {
	return slices.IndexFunc(s.Items, func(l Line) bool { return l.Key() == k })
}

// Normalize returns lines in canonical form: lines without an id or with a non-positive
// quantity are dropped and lines sharing a key are merged into the first, summing quantities.
func Normalize(lines []Line) []Line {
	out := make([]Line, 0, len(lines))
	index := map[Key]int{}
	for _, line := range lines {
		if line.ID == "" || line.Quantity <= 0 {
			continue
		}
		if j, ok := index[line.Key()]; ok {
			out[j].Quantity += line.Quantity
			continue
		}
		index[line.Key()] = len(out)
		out = append(out, line)
	}
	return out
}

// Recompute derives a state from lines, summing both aggregates from scratch.
func Recompute(lines []Line) State {
	s := State{Items: slices.Clone(lines)}
	if s.Items == nil {
		s.Items = []Line{}
	}
	for _, l := range s.Items {
		s.TotalItems += l.Quantity
		s.TotalCents += l.SubtotalCents()
	}
	return s
}

type stateJSON struct {
	Items      []Line  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

func (s State) MarshalJSON() ([]byte, error) {
	items := s.Items
	if items == nil {
		items = []Line{}
	}
	return json.Marshal(stateJSON{Items: items, TotalItems: s.TotalItems, TotalPrice: s.TotalPrice()})
}
