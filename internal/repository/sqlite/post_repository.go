package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"social-backend/internal/domain"
	"social-backend/internal/repository"
)

const createPostsTable = `
CREATE TABLE IF NOT EXISTS posts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	author_id INTEGER NOT NULL,
	content TEXT NOT NULL,
	image_url TEXT,
	created_at DATETIME NOT NULL,
	FOREIGN KEY(author_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_posts_author_id ON posts(author_id);
`

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) repository.PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createPostsTable); err != nil {
		return fmt.Errorf("create posts table: %w", err)
	}
	return nil
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (int64, error) {
	post.CreatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
INSERT INTO posts (author_id, content, image_url, created_at)
VALUES (?, ?, ?, ?)`,
		post.AuthorID,
		post.Content,
		post.ImageURL,
		post.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("post last insert id: %w", err)
	}
	post.ID = id
	return id, nil
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, author_id, content, image_url, created_at
FROM posts
ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.AuthorID, &post.Content, &post.ImageURL, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func (r *PostRepository) Get(ctx context.Context, id int64) (*domain.Post, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, author_id, content, image_url, created_at
FROM posts
WHERE id = ?`,
		id,
	)
	return scanPost(row)
}

// Replace updates the mutable columns and re-reads the row so the
// caller gets the stored creation timestamp back.
func (r *PostRepository) Replace(ctx context.Context, post *domain.Post) error {
	if _, err := r.db.ExecContext(ctx, `
UPDATE posts
SET author_id = ?, content = ?, image_url = ?
WHERE id = ?`,
		post.AuthorID,
		post.Content,
		post.ImageURL,
		post.ID,
	); err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	stored, err := r.Get(ctx, post.ID)
	if err != nil {
		return err
	}
	*post = *stored
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete post rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete post %d: %w", id, repository.ErrNotFound)
	}
	return nil
}

func scanPost(row interface {
	Scan(dest ...any) error
}) (*domain.Post, error) {
	var post domain.Post
	if err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Content,
		&post.ImageURL,
		&post.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("scan post: %w", err)
	}
	return &post, nil
}
