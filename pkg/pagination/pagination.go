package pagination

type Params struct {
	Page     int
	PageSize int
}

// CalculateOffsetLimit returns a zero limit when PageSize is 0, which means everything
func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize == 0 {
		return 0, 0
	}
	offset = (p.Page - 1) * p.PageSize
	limit = p.PageSize
	return offset, limit
}

func (p Params) BuildMeta(totalItems int) Meta {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = (totalItems + p.PageSize - 1) / p.PageSize
	}
	return Meta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Page is one slice of a listing with the metadata to fetch the rest
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// Paginate cuts the requested page out of items. Pages past the end are empty.
func Paginate[T any](items []T, p Params) Page[T] {
	meta := p.BuildMeta(len(items))

	offset, limit := p.CalculateOffsetLimit()
	if limit == 0 {
		return Page[T]{Items: items, Meta: meta}
	}

	if offset >= len(items) {
		return Page[T]{Items: []T{}, Meta: meta}
	}
	end := min(offset+limit, len(items))

	return Page[T]{Items: items[offset:end], Meta: meta}
}
