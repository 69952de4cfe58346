package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ButyrinIA/forum-search/internal/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func TestFeedHub(t *testing.T) {
	t.Run("Publish reaches subscriber", func(t *testing.T) {
		hub := newFeedHub()
		_, ch := hub.subscribe()

		post := models.Post{ID: 1, Content: "Новый пост", Timestamp: "2025-01-01T00:00:00Z"}
		hub.publish(post)

		select {
		case received := <-ch:
			assert.Equal(t, post, received, "Полученный пост не совпадает с опубликованным")
		case <-time.After(time.Second):
			t.Fatal("Пост не дошел до подписчика")
		}
	})

	t.Run("Unsubscribe closes channel", func(t *testing.T) {
		hub := newFeedHub()
		id, ch := hub.subscribe()
		hub.unsubscribe(id)

		_, ok := <-ch
		assert.False(t, ok, "Канал должен быть закрыт после отписки")

		// Повторная отписка и публикация не должны паниковать
		hub.unsubscribe(id)
		hub.publish(models.Post{ID: 1})
	})

	t.Run("Slow subscriber drops posts instead of blocking", func(t *testing.T) {
		hub := newFeedHub()
		_, ch := hub.subscribe()

		hub.publish(models.Post{ID: 1})
		hub.publish(models.Post{ID: 2})

		received := <-ch
		assert.Equal(t, int64(1), received.ID, "Первый пост должен дойти")
		select {
		case post := <-ch:
			t.Fatalf("Второй пост должен быть отброшен, получен %d", post.ID)
		default:
		}
	})
}

func TestFeedWebsocket(t *testing.T) {
	s := newTestServer(&mockStorage{})
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err, "Не удалось подключиться к ленте")
	defer conn.Close()

	// Подписка регистрируется в горутине обработчика, ждем ее
	assert.Eventually(t, func() bool {
		s.feed.mu.RLock()
		defer s.feed.mu.RUnlock()
		return len(s.feed.subscribers) == 1
	}, time.Second, 10*time.Millisecond, "Подписчик не зарегистрировался")

	post := models.Post{ID: 1, Content: "Новый пост", Timestamp: "2025-01-01T00:00:00Z"}
	s.feed.publish(post)

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var received models.Post
	assert.NoError(t, conn.ReadJSON(&received), "Не удалось прочитать пост из ленты")
	assert.Equal(t, post, received, "Полученный пост не совпадает с опубликованным")
}
