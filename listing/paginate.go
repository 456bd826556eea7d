package listing

import "storefront.GO/catalog"

const DefaultPageSize = 6

// Ellipsis marks a gap in a PageWindow.
const Ellipsis = -1

// TotalPages is ceil(count/size); zero for an empty list.
func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Paginate returns the 1-based page of items. Pages outside [1, TotalPages] are empty; the page
// is never clamped.
func Paginate(items []catalog.Product, page, size int) []catalog.Product {
	if size <= 0 || page < 1 {
		return []catalog.Product{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []catalog.Product{}
	}
	end := min(start+size, len(items))
	out := make([]catalog.Product, end-start)
	copy(out, items[start:end])
	return out
}

// PageWindow lists at most five page links around current, with Ellipsis entries standing
// for skipped ranges:
//
//	1 2 3 4 … N      near the start
//	1 … N-3 N-2 N-1 N near the end
//	1 … c-1 c c+1 … N in between
func PageWindow(current, total int) []int {
	if total <= 0 {
		return []int{}
	}
	if total <= 5 {
		return pageRange(1, total)
	}
	switch {
	case current <= 3:
		return append(pageRange(1, 4), Ellipsis, total)
	case current >= total-2:
		return append([]int{1, Ellipsis}, pageRange(total-3, total)...)
	default:
		return []int{1, Ellipsis, current - 1, current, current + 1, Ellipsis, total}
	}
}

func pageRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
