package pagination

import (
	"errors"
	"fmt"

	"github.com/ButyrinIA/forum-search/internal/models"
)

// ErrInvalidPageSize возвращается при perPage < 1.
var ErrInvalidPageSize = errors.New("invalid page size")

// Paginate возвращает страницу постов фиксированного размера вместе с
// метаданными. Номер страницы за пределами [1, totalPages] приводится к
// границе. Пустая коллекция считается одной пустой страницей.
func Paginate(posts []models.Post, page, perPage int) (*models.Page, error) {
	if perPage < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, perPage)
	}

	total := len(posts)
	totalPages := 1
	if total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	result := make([]models.Post, end-start)
	copy(result, posts[start:end])

	return &models.Page{
		Posts:      result,
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
