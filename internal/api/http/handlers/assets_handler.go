package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sunday-school-service/internal/api/dto"
	"github.com/spec-kit/sunday-school-service/internal/service"
	apperrors "github.com/spec-kit/sunday-school-service/pkg/util"
)

// AssetsHandler exposes the inventory endpoints.
type AssetsHandler struct {
	assets *service.AssetService
}

// NewAssetsHandler constructs the handler.
func NewAssetsHandler(assetService *service.AssetService) *AssetsHandler {
	return &AssetsHandler{assets: assetService}
}

// List handles GET /assets.
func (h *AssetsHandler) List(c *fiber.Ctx) error {
	assets, err := h.assets.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"results": len(assets),
		"data":    fiber.Map{"data": assets},
	})
}

// Create handles POST /assets.
func (h *AssetsHandler) Create(c *fiber.Ctx) error {
	var req dto.AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	asset := req.ToDomain()
	if err := h.assets.Create(c.Context(), asset); err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"data": asset},
	})
}

// Update handles PUT /assets/:id.
func (h *AssetsHandler) Update(c *fiber.Ctx) error {
	var req dto.AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	asset := req.ToDomain()
	asset.ID = c.Params("id")

	updated, err := h.assets.Update(c.Context(), asset)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status": "success",
		"data":   fiber.Map{"data": updated},
	})
}

// Delete handles DELETE /assets/:id.
func (h *AssetsHandler) Delete(c *fiber.Ctx) error {
	if err := h.assets.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Asset deleted",
	})
}
