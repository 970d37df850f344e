package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sunday-school-service/internal/domain"
)

// PostRepository defines persistence access for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	SetLikes(ctx context.Context, id string, likes []string) error
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository returns a Postgres-backed implementation.
func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepository{pool: pool}
}

const postColumns = `
	id, title, content, author, author_id, category, status, tags,
	is_pinned, target_audience, publish_date, expiry_date, likes,
	created_at, updated_at`

func scanPost(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.Author, &p.AuthorID, &p.Category, &p.Status, &p.Tags,
		&p.IsPinned, &p.TargetAudience, &p.PublishDate, &p.ExpiryDate, &p.Likes,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	if p.Likes == nil {
		p.Likes = []string{}
	}
	return &p, nil
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
        INSERT INTO posts (
            title, content, author, author_id, category, status, tags,
            is_pinned, target_audience, publish_date, expiry_date, likes
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		post.Title, post.Content, post.Author, post.AuthorID, post.Category, post.Status, post.Tags,
		post.IsPinned, post.TargetAudience, post.PublishDate, post.ExpiryDate, post.Likes,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	return translate(err)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `SELECT` + postColumns + ` FROM posts WHERE id=$1`
	return scanPost(r.pool.QueryRow(ctx, query, id))
}

func (r *postRepository) List(ctx context.Context) ([]*domain.Post, error) {
	query := `SELECT` + postColumns + ` FROM posts ORDER BY is_pinned DESC, publish_date DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var posts []*domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, translate(rows.Err())
}

func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	const query = `
        UPDATE posts SET
            title=$1, content=$2, category=$3, status=$4, tags=$5,
            is_pinned=$6, target_audience=$7, publish_date=$8, expiry_date=$9,
            updated_at=NOW()
        WHERE id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		post.Title, post.Content, post.Category, post.Status, post.Tags,
		post.IsPinned, post.TargetAudience, post.PublishDate, post.ExpiryDate,
		post.ID,
	)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) SetLikes(ctx context.Context, id string, likes []string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE posts SET likes=$1, updated_at=NOW() WHERE id=$2`, likes, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
