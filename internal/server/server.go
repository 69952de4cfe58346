package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/ButyrinIA/forum-search/internal/config"
	"github.com/ButyrinIA/forum-search/internal/filter"
	"github.com/ButyrinIA/forum-search/internal/models"
	"github.com/ButyrinIA/forum-search/internal/pagination"
	"github.com/ButyrinIA/forum-search/internal/storage"
	"github.com/google/uuid"
)

type Server struct {
	cfg     *config.Config
	storage storage.Storage
	feed    *feedHub
}

func New(cfg *config.Config, storage storage.Storage) *Server {
	if cfg.Auth.JWTSecret != "" {
		jwtSecret = []byte(cfg.Auth.JWTSecret)
	}
	return &Server{cfg: cfg, storage: storage, feed: newFeedHub()}
}

// Handler собирает маршруты API. Выделено из Run для httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", s.handleListPosts)
	mux.HandleFunc("POST /posts", s.requireAuth(s.handleCreatePost))
	mux.HandleFunc("GET /posts/{id}", s.handleGetPost)
	mux.HandleFunc("GET /token", s.handleToken)
	mux.HandleFunc("GET /ws", s.handleFeed)
	return logRequests(mux)
}

func (s *Server) Run() error {
	return http.ListenAndServe(":"+s.cfg.Server.Port, s.Handler())
}

// handleListPosts реализует поиск, фильтрацию по датам и пагинацию.
// Параметры запроса: search, start_date, end_date, page, per_page.
func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := filter.Criteria{Search: q.Get("search")}
	if raw := q.Get("start_date"); raw != "" {
		ts, err := filter.ParseTimestamp(raw)
		if err != nil {
			http.Error(w, "invalid start_date: "+err.Error(), http.StatusBadRequest)
			return
		}
		criteria.StartDate = &ts
	}
	if raw := q.Get("end_date"); raw != "" {
		ts, err := filter.ParseTimestamp(raw)
		if err != nil {
			http.Error(w, "invalid end_date: "+err.Error(), http.StatusBadRequest)
			return
		}
		criteria.EndDate = &ts
	}

	page := 1
	if raw := q.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	perPage := s.cfg.Pagination.DefaultPerPage
	if raw := q.Get("per_page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid per_page", http.StatusBadRequest)
			return
		}
		perPage = parsed
	}
	if perPage > s.cfg.Pagination.MaxPerPage {
		perPage = s.cfg.Pagination.MaxPerPage
	}

	posts, err := s.storage.ListPosts(r.Context())
	if err != nil {
		http.Error(w, "failed to list posts", http.StatusInternalServerError)
		return
	}

	filtered, err := filter.Filter(posts, criteria)
	if err != nil {
		// Неразбираемая метка пришла из хранилища, клиент тут ни при чем
		log.Printf("Поврежденная временная метка в хранилище: %v", err)
		http.Error(w, "failed to filter posts", http.StatusInternalServerError)
		return
	}

	result, err := pagination.Paginate(filtered, page, perPage)
	if err != nil {
		if errors.Is(err, pagination.ErrInvalidPageSize) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "failed to paginate posts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Content == "" {
		http.Error(w, "post content is empty", http.StatusBadRequest)
		return
	}
	if len(req.Content) > 2000 {
		http.Error(w, "post content exceeds 2000 characters", http.StatusBadRequest)
		return
	}

	userID, _ := r.Context().Value(userIDKey).(string)
	log.Printf("Пользователь %s создает пост", userID)

	post := models.Post{
		Content:   req.Content,
		Timestamp: filter.FormatTimestamp(time.Now()),
	}
	if err := s.storage.CreatePost(r.Context(), &post); err != nil {
		http.Error(w, "failed to create post", http.StatusInternalServerError)
		return
	}

	s.feed.publish(post)
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid post id", http.StatusBadRequest)
		return
	}

	post, err := s.storage.GetPost(r.Context(), id)
	if err != nil {
		http.Error(w, "post not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	token, err := generateToken("user1")
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Не удалось записать ответ: %v", err)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		log.Printf("[%s] %s %s", requestID, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}
