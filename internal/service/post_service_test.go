package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/repository/repofakes"
	"github.com/spec-kit/sunday-school-service/internal/service"
)

func newPostFixture() (*service.PostService, *repofakes.FakePostRepo, *repofakes.FakeCommentRepo) {
	posts := repofakes.NewFakePostRepo()
	comments := repofakes.NewFakeCommentRepo()
	return service.NewPostService(posts, comments, nil), posts, comments
}

func postAuthor() *domain.Member {
	return &domain.Member{ID: "member-1", FirstName: "Abebe", LastName: "Kebede", Role: domain.RoleUser}
}

func TestCreatePostDefaults(t *testing.T) {
	svc, _, _ := newPostFixture()

	post := &domain.Post{
		Title:    "Weekly lesson",
		Content:  "Parable of the sower",
		Category: domain.PostCategoryLesson,
	}
	require.NoError(t, svc.Create(context.Background(), post, postAuthor()))
	require.NotEmpty(t, post.ID)
	require.Equal(t, "Abebe Kebede", post.Author)
	require.Equal(t, "member-1", post.AuthorID)
	require.Equal(t, domain.PostStatusDraft, post.Status)
	require.Equal(t, domain.AudienceAll, post.TargetAudience)
	require.False(t, post.PublishDate.IsZero())
	require.NotNil(t, post.Likes)
}

func TestCreatePostValidation(t *testing.T) {
	svc, _, _ := newPostFixture()

	err := svc.Create(context.Background(), &domain.Post{Category: "gossip"}, postAuthor())
	de := requireDomainError(t, err, 400)
	require.Contains(t, de.Details, "title")
	require.Contains(t, de.Details, "content")
	require.Contains(t, de.Details, "category")
}

func TestToggleLike(t *testing.T) {
	svc, _, _ := newPostFixture()

	post := &domain.Post{Title: "t", Content: "c", Category: domain.PostCategoryGeneral}
	require.NoError(t, svc.Create(context.Background(), post, postAuthor()))

	updated, liked, err := svc.ToggleLike(context.Background(), post.ID, "member-2")
	require.NoError(t, err)
	require.True(t, liked)
	require.Contains(t, updated.Likes, "member-2")

	updated, liked, err = svc.ToggleLike(context.Background(), post.ID, "member-2")
	require.NoError(t, err)
	require.False(t, liked)
	require.NotContains(t, updated.Likes, "member-2")
}

func TestToggleLikeUnknownPost(t *testing.T) {
	svc, _, _ := newPostFixture()

	_, _, err := svc.ToggleLike(context.Background(), "post-404", "member-1")
	requireDomainError(t, err, 404)
}

func TestAddCommentRequiresPost(t *testing.T) {
	svc, _, _ := newPostFixture()

	err := svc.AddComment(context.Background(), &domain.Comment{PostID: "post-404", Text: "hi"}, postAuthor())
	requireDomainError(t, err, 404)
}

func TestAddCommentAndReply(t *testing.T) {
	svc, _, _ := newPostFixture()

	post := &domain.Post{Title: "t", Content: "c", Category: domain.PostCategoryAnnouncement}
	require.NoError(t, svc.Create(context.Background(), post, postAuthor()))

	comment := &domain.Comment{PostID: post.ID, Text: "first"}
	require.NoError(t, svc.AddComment(context.Background(), comment, postAuthor()))
	require.NotEmpty(t, comment.ID)
	require.Equal(t, "Abebe Kebede", comment.Author)

	reply := &domain.Comment{PostID: post.ID, Text: "reply", ParentID: &comment.ID}
	require.NoError(t, svc.AddComment(context.Background(), reply, postAuthor()))

	missing := "comment-404"
	orphan := &domain.Comment{PostID: post.ID, Text: "orphan", ParentID: &missing}
	requireDomainError(t, svc.AddComment(context.Background(), orphan, postAuthor()), 404)

	listed, err := svc.CommentsByPost(context.Background(), post.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
}

func TestToggleCommentLike(t *testing.T) {
	svc, _, _ := newPostFixture()

	post := &domain.Post{Title: "t", Content: "c", Category: domain.PostCategoryGeneral}
	require.NoError(t, svc.Create(context.Background(), post, postAuthor()))
	comment := &domain.Comment{PostID: post.ID, Text: "hello"}
	require.NoError(t, svc.AddComment(context.Background(), comment, postAuthor()))

	updated, liked, err := svc.ToggleCommentLike(context.Background(), comment.ID, "member-3")
	require.NoError(t, err)
	require.True(t, liked)
	require.Contains(t, updated.Likes, "member-3")
}
