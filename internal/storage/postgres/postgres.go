package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ButyrinIA/forum-search/internal/models"
	"github.com/jackc/pgx/v5"
)

type PostgresStorage struct {
	conn *pgx.Conn
}

func New(dsn string) (*PostgresStorage, error) {
	conn, err := pgx.Connect(context.Background(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %v", err)
	}

	// Временная метка хранится текстом: формат ISO-8601 с суффиксом Z
	// разбирается пакетом filter, а не базой
	_, err = conn.Exec(context.Background(), `
		CREATE TABLE IF NOT EXISTS posts (
			id BIGSERIAL PRIMARY KEY,
			content TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create tables: %v", err)
	}

	return &PostgresStorage{conn: conn}, nil
}

func (s *PostgresStorage) CreatePost(ctx context.Context, post *models.Post) error {
	return s.conn.QueryRow(ctx, `
		INSERT INTO posts (content, created_at)
		VALUES ($1, $2)
		RETURNING id`,
		post.Content, post.Timestamp).Scan(&post.ID)
}

func (s *PostgresStorage) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	var p models.Post
	err := s.conn.QueryRow(ctx, `
		SELECT id, content, created_at
		FROM posts
		WHERE id=$1`, id).Scan(&p.ID, &p.Content, &p.Timestamp)

	if err == pgx.ErrNoRows {
		return nil, errors.New("post not found")
	}
	return &p, err
}

func (s *PostgresStorage) ListPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, content, created_at
		FROM posts
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Content, &p.Timestamp); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (s *PostgresStorage) Close() error {
	return s.conn.Close(context.Background())
}
