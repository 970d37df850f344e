package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/events"
	"github.com/spec-kit/sunday-school-service/internal/repository"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

// PostService manages posts, likes and comment threads.
type PostService struct {
	posts      repository.PostRepository
	comments   repository.CommentRepository
	dispatcher events.Dispatcher
}

// NewPostService builds the service.
func NewPostService(posts repository.PostRepository, comments repository.CommentRepository, dispatcher events.Dispatcher) *PostService {
	return &PostService{posts: posts, comments: comments, dispatcher: dispatcher}
}

// List returns all posts, pinned first then newest.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx)
}

// Get fetches a single post.
func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "Post")
	}
	return post, nil
}

// Create stores a post authored by the given member.
func (s *PostService) Create(ctx context.Context, post *domain.Post, author *domain.Member) error {
	details := map[string]any{}
	if post.Title == "" {
		details["title"] = "title is required"
	}
	if post.Content == "" {
		details["content"] = "content is required"
	}
	switch post.Category {
	case domain.PostCategoryAnnouncement, domain.PostCategoryLesson, domain.PostCategoryEvent, domain.PostCategoryGeneral:
	default:
		details["category"] = "category must be one of announcement, lesson, event, general"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("Validation failed", details)
	}

	post.Author = author.FirstName + " " + author.LastName
	post.AuthorID = author.ID
	if post.Status == "" {
		post.Status = domain.PostStatusDraft
	}
	if post.TargetAudience == "" {
		post.TargetAudience = domain.AudienceAll
	}
	if post.PublishDate.IsZero() {
		post.PublishDate = time.Now()
	}
	if post.Likes == nil {
		post.Likes = []string{}
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return mapRepoError(err, "Post")
	}

	if post.Status == domain.PostStatusPublished {
		s.publish(ctx, events.EventPostPublished, author.ID, events.PostPublishedPayload{
			PostID:   post.ID,
			Title:    post.Title,
			Category: post.Category,
			Audience: post.TargetAudience,
		})
	}
	return nil
}

// Update replaces a post's editable fields.
func (s *PostService) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, mapRepoError(err, "Post")
	}
	updated, err := s.posts.GetByID(ctx, post.ID)
	if err != nil {
		return nil, mapRepoError(err, "Post")
	}
	return updated, nil
}

// Delete removes a post.
func (s *PostService) Delete(ctx context.Context, id string) error {
	return mapRepoError(s.posts.Delete(ctx, id), "Post")
}

// ToggleLike likes the post for the member, or removes an existing like.
func (s *PostService) ToggleLike(ctx context.Context, postID, memberID string) (*domain.Post, bool, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, false, mapRepoError(err, "Post")
	}

	liked := post.Liked(memberID)
	if liked {
		kept := post.Likes[:0]
		for _, id := range post.Likes {
			if id != memberID {
				kept = append(kept, id)
			}
		}
		post.Likes = kept
	} else {
		post.Likes = append(post.Likes, memberID)
	}

	if err := s.posts.SetLikes(ctx, post.ID, post.Likes); err != nil {
		return nil, false, mapRepoError(err, "Post")
	}
	return post, !liked, nil
}

// CommentsByPost returns a post's comments, newest first.
func (s *PostService) CommentsByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

// AddComment stores a comment or reply on a post.
func (s *PostService) AddComment(ctx context.Context, comment *domain.Comment, author *domain.Member) error {
	details := map[string]any{}
	if comment.PostID == "" {
		details["postId"] = "postId is required"
	}
	if comment.Text == "" {
		details["text"] = "text is required"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("Validation failed", details)
	}

	if _, err := s.posts.GetByID(ctx, comment.PostID); err != nil {
		return mapRepoError(err, "Post")
	}
	if comment.ParentID != nil {
		if _, err := s.comments.GetByID(ctx, *comment.ParentID); err != nil {
			return mapRepoError(err, "Comment")
		}
	}

	comment.Author = author.FirstName + " " + author.LastName
	comment.AuthorID = author.ID
	if comment.Likes == nil {
		comment.Likes = []string{}
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return mapRepoError(err, "Comment")
	}

	s.publish(ctx, events.EventCommentAdded, author.ID, events.CommentAddedPayload{
		CommentID: comment.ID,
		PostID:    comment.PostID,
		ParentID:  comment.ParentID,
	})
	return nil
}

// ToggleCommentLike likes the comment for the member, or removes an
// existing like.
func (s *PostService) ToggleCommentLike(ctx context.Context, commentID, memberID string) (*domain.Comment, bool, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, false, mapRepoError(err, "Comment")
	}

	liked := comment.Liked(memberID)
	if liked {
		kept := comment.Likes[:0]
		for _, id := range comment.Likes {
			if id != memberID {
				kept = append(kept, id)
			}
		}
		comment.Likes = kept
	} else {
		comment.Likes = append(comment.Likes, memberID)
	}

	if err := s.comments.SetLikes(ctx, comment.ID, comment.Likes); err != nil {
		return nil, false, mapRepoError(err, "Comment")
	}
	return comment, !liked, nil
}

func (s *PostService) publish(ctx context.Context, eventType events.EventType, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
