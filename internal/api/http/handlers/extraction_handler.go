package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sublease-service/internal/api/dto"
	"github.com/spec-kit/sublease-service/internal/extraction"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// ExtractionHandler forwards listing text/images to the extraction model.
type ExtractionHandler struct {
	client *extraction.Client
}

// NewExtractionHandler constructs handler.
func NewExtractionHandler(client *extraction.Client) *ExtractionHandler {
	return &ExtractionHandler{client: client}
}

// Extract handles POST /api/extract-listing.
func (h *ExtractionHandler) Extract(c *fiber.Ctx) error {
	var req dto.ExtractListingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.Text == "" && req.ImageURL == "" {
		return apperrors.NewBadRequest("text or imageUrl is required")
	}

	draft, err := h.client.Extract(c.UserContext(), req.Text, req.ImageURL)
	if err != nil {
		return apperrors.NewUpstreamFailure("extraction failed", err)
	}
	return c.JSON(fiber.Map{"success": true, "data": draft})
}
