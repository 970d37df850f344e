package domain

import "time"

// PostCategory enumerates supported post kinds.
type PostCategory string

const (
	PostCategoryAnnouncement PostCategory = "announcement"
	PostCategoryLesson       PostCategory = "lesson"
	PostCategoryEvent        PostCategory = "event"
	PostCategoryGeneral      PostCategory = "general"
)

// PostStatus represents publication states.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// TargetAudience narrows who a post is meant for.
type TargetAudience string

const (
	AudienceAll      TargetAudience = "all"
	AudienceStudents TargetAudience = "students"
	AudienceTeachers TargetAudience = "teachers"
	AudienceParents  TargetAudience = "parents"
)

// Post is an announcement or lesson published to members.
type Post struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	Author         string         `json:"author"`
	AuthorID       string         `json:"authorId"`
	Category       PostCategory   `json:"category"`
	Status         PostStatus     `json:"status"`
	Tags           []string       `json:"tags,omitempty"`
	IsPinned       bool           `json:"isPinned"`
	TargetAudience TargetAudience `json:"targetAudience"`
	PublishDate    time.Time      `json:"publishDate"`
	ExpiryDate     *time.Time     `json:"expiryDate,omitempty"`
	Likes          []string       `json:"likes"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Liked reports whether the member already liked the post.
func (p *Post) Liked(memberID string) bool {
	for _, id := range p.Likes {
		if id == memberID {
			return true
		}
	}
	return false
}
