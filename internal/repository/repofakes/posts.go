package repofakes

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/repository"
)

// FakePostRepo is an in-memory PostRepository for tests.
type FakePostRepo struct {
	mu    sync.Mutex
	seq   int
	posts map[string]domain.Post
}

// NewFakePostRepo builds an empty fake.
func NewFakePostRepo() *FakePostRepo {
	return &FakePostRepo{posts: make(map[string]domain.Post)}
}

func (f *FakePostRepo) Create(_ context.Context, post *domain.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	now := time.Now()
	post.ID = fmt.Sprintf("post-%d", f.seq)
	post.CreatedAt = now
	post.UpdatedAt = now
	f.posts[post.ID] = *post
	return nil
}

func (f *FakePostRepo) GetByID(_ context.Context, id string) (*domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &post, nil
}

func (f *FakePostRepo) List(_ context.Context) ([]*domain.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	posts := make([]*domain.Post, 0, len(f.posts))
	for _, post := range f.posts {
		p := post
		posts = append(posts, &p)
	}
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].IsPinned != posts[j].IsPinned {
			return posts[i].IsPinned
		}
		return posts[i].PublishDate.After(posts[j].PublishDate)
	})
	return posts, nil
}

func (f *FakePostRepo) Update(_ context.Context, post *domain.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.posts[post.ID]
	if !ok {
		return repository.ErrNotFound
	}
	updated := *post
	updated.Author = existing.Author
	updated.AuthorID = existing.AuthorID
	updated.Likes = existing.Likes
	updated.UpdatedAt = time.Now()
	f.posts[post.ID] = updated
	return nil
}

func (f *FakePostRepo) SetLikes(_ context.Context, id string, likes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	post.Likes = append([]string{}, likes...)
	post.UpdatedAt = time.Now()
	f.posts[id] = post
	return nil
}

func (f *FakePostRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

var _ repository.PostRepository = (*FakePostRepo)(nil)

// FakeCommentRepo is an in-memory CommentRepository for tests.
type FakeCommentRepo struct {
	mu       sync.Mutex
	seq      int
	comments map[string]domain.Comment
}

// NewFakeCommentRepo builds an empty fake.
func NewFakeCommentRepo() *FakeCommentRepo {
	return &FakeCommentRepo{comments: make(map[string]domain.Comment)}
}

func (f *FakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	now := time.Now()
	comment.ID = fmt.Sprintf("comment-%d", f.seq)
	comment.CreatedAt = now
	comment.UpdatedAt = now
	f.comments[comment.ID] = *comment
	return nil
}

func (f *FakeCommentRepo) GetByID(_ context.Context, id string) (*domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	comment, ok := f.comments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &comment, nil
}

func (f *FakeCommentRepo) ListByPost(_ context.Context, postID string) ([]*domain.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	comments := make([]*domain.Comment, 0)
	for _, comment := range f.comments {
		if comment.PostID == postID {
			c := comment
			comments = append(comments, &c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (f *FakeCommentRepo) SetLikes(_ context.Context, id string, likes []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	comment, ok := f.comments[id]
	if !ok {
		return repository.ErrNotFound
	}
	comment.Likes = append([]string{}, likes...)
	comment.UpdatedAt = time.Now()
	f.comments[id] = comment
	return nil
}

func (f *FakeCommentRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.comments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

var _ repository.CommentRepository = (*FakeCommentRepo)(nil)
