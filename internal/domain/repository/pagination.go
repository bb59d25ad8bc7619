package repository

// PageSize is the fixed number of items returned per page.
const PageSize = 20

// PaginationParams selects a 1-based page.
type PaginationParams struct {
	Page int
}

// Offset is the number of rows to skip. Pages below 1 are treated as the first page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * PageSize
}

func (p PaginationParams) Limit() int {
	return PageSize
}
