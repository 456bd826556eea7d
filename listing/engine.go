package listing

import "storefront.GO/catalog"

// State is everything a listing page derives its products from.
type State struct {
	Filters Filters    `json:"filters"`
	Sort    SortOption `json:"sort"`
	Page    int        `json:"page"`
}

func DefaultState() State {
	return State{Filters: DefaultFilters(), Sort: DefaultSort, Page: 1}
}

type Result struct {
	Items      []catalog.Product `json:"items"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalPages int               `json:"totalPages"`
	TotalCount int               `json:"totalCount"`
}

// Query filters, stably sorts and paginates products. It has no side effects and does not
// modify products.
func Query(products []catalog.Product, filters Filters, sort SortOption, page, pageSize int) Result {
	sorted := Sort(Filter(products, filters), sort)
	return Result{
		Items:      Paginate(sorted, page, pageSize),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(sorted), pageSize),
		TotalCount: len(sorted),
	}
}

// Apply runs Query with the state's filters, sort and page.
func (s State) Apply(products []catalog.Product, pageSize int) Result {
	return Query(products, s.Filters, s.Sort, s.Page, pageSize)
}
