package model

// Pageable bundles page, size and sort for a paginated query. Page is
// zero-based; Size arrives clamped by the parser.
type Pageable struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

func (p Pageable) Offset() int64 {
	return int64(p.Page) * int64(p.Size)
}

func (p Pageable) Descending() bool {
	return p.SortDir != "asc"
}
