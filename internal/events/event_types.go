package events

import (
	"time"

	"github.com/spec-kit/sunday-school-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventMemberRegistered EventType = "member_registered"
	EventPostPublished    EventType = "post_published"
	EventCommentAdded     EventType = "comment_added"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// MemberRegisteredPayload payload.
type MemberRegisteredPayload struct {
	MemberID  string `json:"member_id"`
	StudentID string `json:"student_id"`
	Email     string `json:"email"`
}

// PostPublishedPayload payload.
type PostPublishedPayload struct {
	PostID   string                `json:"post_id"`
	Title    string                `json:"title"`
	Category domain.PostCategory   `json:"category"`
	Audience domain.TargetAudience `json:"audience"`
}

// CommentAddedPayload payload.
type CommentAddedPayload struct {
	CommentID string  `json:"comment_id"`
	PostID    string  `json:"post_id"`
	ParentID  *string `json:"parent_id,omitempty"`
}
