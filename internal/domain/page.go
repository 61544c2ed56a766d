package domain

// Page is one page of a paginated listing.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

// Validate checks the page invariants: a 1-based page number and no more
// items than the page size admits.
func (p Page[T]) Validate() error {
	if p.Page < 1 {
		return ErrInvalidPage
	}
	if p.PageSize > 0 && len(p.Items) > p.PageSize {
		return ErrInvalidPage
	}
	return nil
}
