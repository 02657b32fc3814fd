package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ListParams holds the pagination and search fields shared by list endpoints.
// Sort accepts a column name with an optional leading "-" for descending order.
type ListParams struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

// Normalize applies the default page and page size when unset.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
}

// SortColumn splits the sort field into a column name and SQL direction.
// An empty sort returns the provided defaults.
func (p *ListParams) SortColumn(defaultColumn, defaultDir string) (string, string) {
	if p.Sort == "" {
		return defaultColumn, defaultDir
	}
	if p.Sort[0] == '-' {
		return p.Sort[1:], "DESC"
	}
	return p.Sort, "ASC"
}
