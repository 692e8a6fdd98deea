// Package pagination implements the two paging styles used by the browser:
// cumulative "load more" prefixes for movie grids and disjoint windows for
// the cast/director directory.
package pagination

// Prefix returns the first min(page*size, len(seq)) elements. Pages start at 1;
// anything lower is treated as 1. The result aliases seq.
func Prefix[T any](seq []T, page, size int) []T {
	if size <= 0 {
		return seq[:0]
	}
	if page < 1 {
		page = 1
	}
	end := page * size
	if end > len(seq) || end < 0 {
		end = len(seq)
	}
	return seq[:end]
}

// HasMore reports whether a "load more" action would reveal more items.
func HasMore(total, page, size int) bool {
	if size <= 0 {
		return false
	}
	if page < 1 {
		page = 1
	}
	return page*size < total
}

// TotalPages is ceil(n/size), 0 for an empty sequence.
func TotalPages(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Clamp keeps page within [1, max(totalPages, 1)].
func Clamp(page, totalPages int) int {
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page
}

// Page is one disjoint window of a sequence.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	TotalPages int  `json:"totalPages"`
	Total      int  `json:"total"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// Window returns the page-th slice of size elements, with page clamped.
func Window[T any](seq []T, page, size int) Page[T] {
	total := TotalPages(len(seq), size)
	page = Clamp(page, total)

	out := Page[T]{
		Page:       page,
		TotalPages: total,
		Total:      len(seq),
		HasPrev:    page > 1,
		HasNext:    page < total,
	}
	if total == 0 {
		out.Items = seq[:0]
		return out
	}

	start := (page - 1) * size
	end := start + size
	if end > len(seq) {
		end = len(seq)
	}
	out.Items = seq[start:end]
	return out
}
