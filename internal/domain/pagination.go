package domain

// PaginationParams selects one page of a list. Page is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset is the number of rows before the page; pages below 1 start at row 0.
func (p PaginationParams) Offset() int {
	return max(p.Page-1, 0) * p.PageSize
}

// TotalPages is the number of pages needed for total rows, 0 for an empty page size.
func (p PaginationParams) TotalPages(total int) int {
	if p.PageSize <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
