package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sunday-school-service/internal/api/dto"
	"github.com/spec-kit/sunday-school-service/internal/auth"
	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/service"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

// CommentsHandler exposes the comment endpoints.
type CommentsHandler struct {
	posts *service.PostService
}

// NewCommentsHandler constructs the handler.
func NewCommentsHandler(postService *service.PostService) *CommentsHandler {
	return &CommentsHandler{posts: postService}
}

// ListByPost handles GET /comments/post/:postId.
func (h *CommentsHandler) ListByPost(c *fiber.Ctx) error {
	comments, err := h.posts.CommentsByPost(c.Context(), c.Params("postId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(comments),
		"data":    fiber.Map{"data": comments},
	})
}

// Create handles POST /comments.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("You are not logged in. Please log in to get access.")
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	comment := &domain.Comment{
		PostID:   req.PostID,
		Text:     req.Text,
		ParentID: req.ParentID,
	}
	if err := h.posts.AddComment(c.Context(), comment, member); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"data": comment},
	})
}

// Like handles POST /comments/:id/like, toggling the caller's like.
func (h *CommentsHandler) Like(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("You are not logged in. Please log in to get access.")
	}

	comment, liked, err := h.posts.ToggleCommentLike(c.Context(), c.Params("id"), member.ID)
	if err != nil {
		return err
	}

	message := "Comment unliked"
	if liked {
		message = "Comment liked"
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    fiber.Map{"data": comment},
	})
}
