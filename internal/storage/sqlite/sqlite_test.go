package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ButyrinIA/forum-search/internal/models"
	"github.com/stretchr/testify/assert"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "posts.db"))
	if err != nil {
		t.Fatalf("Не удалось инициализировать SQLiteStorage: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStorage(t *testing.T) {
	t.Run("CreatePost and GetPost", func(t *testing.T) {
		store := newTestStorage(t)
		ctx := context.Background()

		post := &models.Post{Content: "Содержимое", Timestamp: "2025-01-01T00:00:00Z"}
		err := store.CreatePost(ctx, post)
		assert.NoError(t, err, "Ошибка при создании поста")
		assert.Equal(t, int64(1), post.ID, "Первый пост должен получить ID 1")

		retrieved, err := store.GetPost(ctx, post.ID)
		assert.NoError(t, err, "Ошибка при получении поста")
		assert.Equal(t, post, retrieved, "Полученный пост не совпадает с созданным")
	})

	t.Run("GetPost Not Found", func(t *testing.T) {
		store := newTestStorage(t)
		ctx := context.Background()

		_, err := store.GetPost(ctx, 42)
		assert.Error(t, err, "Ожидалась ошибка для несуществующего поста")
		assert.Equal(t, "post not found", err.Error(), "Неверное сообщение об ошибке")
	})

	t.Run("ListPosts in creation order", func(t *testing.T) {
		store := newTestStorage(t)
		ctx := context.Background()

		contents := []string{"первый", "второй", "третий"}
		for _, content := range contents {
			post := &models.Post{Content: content, Timestamp: "2025-01-01T00:00:00Z"}
			assert.NoError(t, store.CreatePost(ctx, post))
		}

		posts, err := store.ListPosts(ctx)
		assert.NoError(t, err, "Ошибка при получении списка постов")
		assert.Len(t, posts, 3, "Ожидались три поста")
		for i, content := range contents {
			assert.Equal(t, content, posts[i].Content, "Нарушен порядок создания")
		}
	})

	t.Run("Empty storage lists nothing", func(t *testing.T) {
		store := newTestStorage(t)

		posts, err := store.ListPosts(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, posts, "Пустое хранилище должно давать пустой список")
	})
}
