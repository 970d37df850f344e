package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sunday-school-service/internal/domain"
)

// CommentRepository defines persistence access for post comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	SetLikes(ctx context.Context, id string, likes []string) error
	Delete(ctx context.Context, id string) error
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

const commentColumns = `
	id, post_id, author, author_id, text, parent_id, likes, created_at, updated_at`

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var c domain.Comment
	if err := row.Scan(
		&c.ID, &c.PostID, &c.Author, &c.AuthorID, &c.Text, &c.ParentID, &c.Likes,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return &c, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO comments (post_id, author, author_id, text, parent_id, likes)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		comment.PostID, comment.Author, comment.AuthorID, comment.Text, comment.ParentID, comment.Likes,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	return translate(err)
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	query := `SELECT` + commentColumns + ` FROM comments WHERE id=$1`
	return scanComment(r.pool.QueryRow(ctx, query, id))
}

// ListByPost returns a post's comments, newest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	query := `SELECT` + commentColumns + ` FROM comments WHERE post_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var comments []*domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, translate(rows.Err())
}

func (r *commentRepository) SetLikes(ctx context.Context, id string, likes []string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE comments SET likes=$1, updated_at=NOW() WHERE id=$2`, likes, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
