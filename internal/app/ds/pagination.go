package ds

// PaginationInfo представляет метаданные пагинации
type PaginationInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PaginatedSalariesResponse представляет ответ с пагинированной таблицей
type PaginatedSalariesResponse struct {
	Data       []Salary       `json:"data"`
	Pagination PaginationInfo `json:"pagination"`
	Filters    Filters        `json:"filters"`
}

// NewPaginationInfo нормализует страницу и считает количество страниц
func NewPaginationInfo(page, pageSize int, total int64) PaginationInfo {
	if page < 1 {
		page = 1
	}

	totalPages := 0
	if total > 0 && pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return PaginationInfo{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
