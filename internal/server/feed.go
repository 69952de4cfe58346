package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/ButyrinIA/forum-search/internal/models"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// feedHub рассылает созданные посты подписчикам ленты.
type feedHub struct {
	subscribers map[string]chan models.Post
	mu          sync.RWMutex
}

func newFeedHub() *feedHub {
	return &feedHub{subscribers: make(map[string]chan models.Post)}
}

func (h *feedHub) subscribe() (string, <-chan models.Post) {
	id := uuid.New().String()
	ch := make(chan models.Post, 1)

	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()

	return id, ch
}

func (h *feedHub) unsubscribe(id string) {
	h.mu.Lock()
	if ch, exists := h.subscribers[id]; exists {
		close(ch)
		delete(h.subscribers, id)
	}
	h.mu.Unlock()
}

func (h *feedHub) publish(post models.Post) {
	h.mu.RLock()
	for _, ch := range h.subscribers {
		select {
		case ch <- post:
		default:
			// Отстающий подписчик пропускает пост
		}
	}
	h.mu.RUnlock()
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Не удалось обновить соединение: %v", err)
		return
	}
	defer conn.Close()

	id, ch := s.feed.subscribe()
	defer s.feed.unsubscribe(id)

	for {
		select {
		case post, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(post); err != nil {
				return
			}
		case <-r.Context().Done():
			return
		}
	}
}
