package utils

// PaginationParams holds a normalized page request. Limit 0 means no
// limit: admin list views fetch everything by default.
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta describes the full result set a page was cut from
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// GetPaginationParams clamps raw query values into a usable request
func GetPaginationParams(page, limit int) PaginationParams {
	p := PaginationParams{Page: page, Limit: limit}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 0 {
		p.Limit = 0
	}
	return p
}

// CalculateOffset returns the SQL offset for this page
func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta builds the response metadata for a paged listing
func CalculateMeta(totalCount int64, page, limit int) PaginationMeta {
	if limit <= 0 {
		// Unlimited: everything fits on a single page
		return PaginationMeta{
			Page:       1,
			Limit:      int(totalCount),
			TotalCount: totalCount,
			TotalPages: 1,
		}
	}

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))
	if totalPages < 0 {
		totalPages = 0
	}

	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
