package models

// Post - запись форума. Timestamp хранится строкой в формате ISO-8601
// с суффиксом Z (UTC), разбор выполняется в пакете filter.
type Post struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Page - одна страница постов вместе с метаданными пагинации.
type Page struct {
	Posts      []Post `json:"posts"`
	Page       int    `json:"page"`
	PerPage    int    `json:"perPage"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
}
