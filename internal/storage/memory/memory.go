package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/ButyrinIA/forum-search/internal/models"
)

type MemoryStorage struct {
	posts  []models.Post
	nextID int64
	mu     sync.RWMutex
}

func New() *MemoryStorage {
	return &MemoryStorage{nextID: 1}
}

func (s *MemoryStorage) CreatePost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post.ID = s.nextID
	s.nextID++
	s.posts = append(s.posts, *post)
	return nil
}

func (s *MemoryStorage) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.posts {
		if post.ID == id {
			found := post
			return &found, nil
		}
	}
	return nil, errors.New("post not found")
}

func (s *MemoryStorage) ListPosts(ctx context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Копия, чтобы вызывающий не мог изменить внутреннее состояние
	result := make([]models.Post, len(s.posts))
	copy(result, s.posts)
	return result, nil
}

func (s *MemoryStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = nil
	return nil
}
