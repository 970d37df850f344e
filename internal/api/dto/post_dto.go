package dto

import (
	"time"

	"github.com/spec-kit/sunday-school-service/internal/domain"
)

// PostRequest payload for creating or updating a post. Author fields are
// taken from the authenticated member, never from the payload.
type PostRequest struct {
	Title          string                `json:"title"`
	Content        string                `json:"content"`
	Category       domain.PostCategory   `json:"category"`
	Status         domain.PostStatus     `json:"status"`
	Tags           []string              `json:"tags"`
	IsPinned       bool                  `json:"isPinned"`
	TargetAudience domain.TargetAudience `json:"targetAudience"`
	PublishDate    time.Time             `json:"publishDate"`
	ExpiryDate     *time.Time            `json:"expiryDate"`
}

// ToDomain builds the domain post.
func (r *PostRequest) ToDomain() *domain.Post {
	return &domain.Post{
		Title:          r.Title,
		Content:        r.Content,
		Category:       r.Category,
		Status:         r.Status,
		Tags:           r.Tags,
		IsPinned:       r.IsPinned,
		TargetAudience: r.TargetAudience,
		PublishDate:    r.PublishDate,
		ExpiryDate:     r.ExpiryDate,
	}
}

// CommentRequest payload for creating a comment or reply.
type CommentRequest struct {
	PostID   string  `json:"postId"`
	Text     string  `json:"text"`
	ParentID *string `json:"parentId"`
}
