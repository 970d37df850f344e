package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sunday-school-service/internal/api/dto"
	"github.com/spec-kit/sunday-school-service/internal/auth"
	"github.com/spec-kit/sunday-school-service/internal/service"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

// PostsHandler exposes the post endpoints.
type PostsHandler struct {
	posts *service.PostService
}

// NewPostsHandler constructs the handler.
func NewPostsHandler(postService *service.PostService) *PostsHandler {
	return &PostsHandler{posts: postService}
}

// List handles GET /posts.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	posts, err := h.posts.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(posts),
		"data":    fiber.Map{"data": posts},
	})
}

// Get handles GET /posts/:id.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	post, err := h.posts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"data": post},
	})
}

// Create handles POST /posts.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("You are not logged in. Please log in to get access.")
	}

	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	post := req.ToDomain()
	if err := h.posts.Create(c.Context(), post, member); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"data": post},
	})
}

// Update handles PUT /posts/:id.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	var req dto.PostRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	post := req.ToDomain()
	post.ID = c.Params("id")

	updated, err := h.posts.Update(c.Context(), post)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"data": updated},
	})
}

// Delete handles DELETE /posts/:id.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	if err := h.posts.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Post deleted",
	})
}

// Like handles POST /posts/:id/like, toggling the caller's like.
func (h *PostsHandler) Like(c *fiber.Ctx) error {
	member, ok := auth.MemberFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("You are not logged in. Please log in to get access.")
	}

	post, liked, err := h.posts.ToggleLike(c.Context(), c.Params("id"), member.ID)
	if err != nil {
		return err
	}

	message := "Post unliked"
	if liked {
		message = "Post liked"
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    fiber.Map{"data": post},
	})
}
