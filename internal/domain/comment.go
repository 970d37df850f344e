package domain

import "time"

// Comment belongs to a post; ParentID links replies to their parent.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"authorId"`
	Text      string    `json:"text"`
	ParentID  *string   `json:"parentId,omitempty"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Liked reports whether the member already liked the comment.
func (c *Comment) Liked(memberID string) bool {
	for _, id := range c.Likes {
		if id == memberID {
			return true
		}
	}
	return false
}
