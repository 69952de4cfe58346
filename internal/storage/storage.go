package storage

import (
	"context"

	"github.com/ButyrinIA/forum-search/internal/models"
)

// Storage - слой хранения постов. ListPosts возвращает всю коллекцию в
// порядке создания: фильтрация и пагинация выполняются поверх нее в памяти.
type Storage interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	ListPosts(ctx context.Context) ([]models.Post, error)
	Close() error
}
