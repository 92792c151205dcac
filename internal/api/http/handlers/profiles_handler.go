package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sublease-service/internal/api/dto"
	"github.com/spec-kit/sublease-service/internal/domain"
	"github.com/spec-kit/sublease-service/internal/service"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// ProfilesHandler exposes the profile upsert endpoint.
type ProfilesHandler struct {
	profiles *service.ProfileService
}

// NewProfilesHandler constructs handler.
func NewProfilesHandler(profiles *service.ProfileService) *ProfilesHandler {
	return &ProfilesHandler{profiles: profiles}
}

// Create handles POST /api/create-profile.
func (h *ProfilesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.Profile == nil || req.Profile.ID == "" || req.UserToken == "" {
		return apperrors.NewBadRequest("profile and userToken are required")
	}

	_, err := h.profiles.CreateProfile(c.UserContext(), req.UserToken, service.ProfileInput{
		ID:       req.Profile.ID,
		Email:    req.Profile.Email,
		FullName: req.Profile.FullName,
		Phone:    req.Profile.Phone,
		Role:     domain.ProfileRole(req.Profile.Role),
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}
