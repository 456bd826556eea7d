package listing

import "storefront.GO/catalog"

// View holds one listing page's state. Changing filters or sort sends the page back to 1;
// changing the page leaves filters and sort alone.
type View struct {
	state State
}

// NewView seeds a view, typically from Decode at page entry.
func NewView(s State) *View {
	if s.Page < 1 {
		s.Page = 1
	}
	s.Sort = ParseSort(string(s.Sort))
	return &View{state: s}
}

func (v *View) State() State {
	return v.state
}

func (v *View) SetFilters(f Filters) {
	if v.state.Filters.Equal(f) {
		return
	}
	v.state.Filters = f
	v.state.Page = 1
}

func (v *View) SetSort(s SortOption) {
	s = ParseSort(string(s))
	if v.state.Sort == s {
		return
	}
	v.state.Sort = s
	v.state.Page = 1
}

func (v *View) SetPage(page int) {
	v.state.Page = page
}

// Query is the canonical query string of the current state.
func (v *View) Query() string {
	return Encode(v.state)
}

func (v *View) Result(products []catalog.Product, pageSize int) Result {
	return v.state.Apply(products, pageSize)
}

// Links are the query strings a listing page offers from the current state.
type Links struct {
	Self  string                `json:"self"`
	Prev  *string               `json:"prev"`
	Next  *string               `json:"next"`
	Pages map[int]string        `json:"pages"`
	Sorts map[SortOption]string `json:"sorts"`
}

// Links computes navigation for a result with totalPages pages. Each link is the query the
// view would have after the corresponding transition.
func (v *View) Links(totalPages int) Links {
	l := Links{
		Self:  v.Query(),
		Pages: map[int]string{},
		Sorts: map[SortOption]string{},
	}
	page := v.state.Page
	if page > 1 {
		q := v.after(func(n *View) { n.SetPage(page - 1) })
		l.Prev = &q
	}
	if page < totalPages {
		q := v.after(func(n *View) { n.SetPage(page + 1) })
		l.Next = &q
	}
	for _, p := range PageWindow(page, totalPages) {
		if p == Ellipsis {
			continue
		}
		l.Pages[p] = v.after(func(n *View) { n.SetPage(p) })
	}
	for _, s := range SortOptions {
		l.Sorts[s] = v.after(func(n *View) { n.SetSort(s) })
	}
	return l
}

func (v *View) after(transition func(*View)) string {
	n := &View{state: v.state}
	transition(n)
	return n.Query()
}
