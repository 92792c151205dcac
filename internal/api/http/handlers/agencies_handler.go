package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sublease-service/internal/api/dto"
	"github.com/spec-kit/sublease-service/internal/domain"
	"github.com/spec-kit/sublease-service/internal/service"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// AgenciesHandler exposes agency creation, updates and browsing.
type AgenciesHandler struct {
	agencies *service.AgencyService
}

// NewAgenciesHandler constructs handler.
func NewAgenciesHandler(agencies *service.AgencyService) *AgenciesHandler {
	return &AgenciesHandler{agencies: agencies}
}

// Create handles POST /api/create-agency.
func (h *AgenciesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.AgencyData == nil || req.AgencyData.UserID == "" || req.AgencyData.Name == "" || req.UserToken == "" {
		return apperrors.NewBadRequest("agencyData with user_id and name, and userToken are required")
	}

	agency, err := h.agencies.CreateAgency(c.UserContext(), req.UserToken, service.AgencyInput{
		UserID:      req.AgencyData.UserID,
		Name:        req.AgencyData.Name,
		Location:    req.AgencyData.Location,
		LogoURL:     req.AgencyData.LogoURL,
		Description: req.AgencyData.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": dto.NewAgencyResponse(agency)})
}

// Update handles POST /api/update-agency.
func (h *AgenciesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.AgencyID == "" || req.AgencyData == nil || req.UserToken == "" {
		return apperrors.NewBadRequest("agencyId, agencyData and userToken are required")
	}

	agency, err := h.agencies.UpdateAgency(c.UserContext(), req.UserToken, req.AgencyID, domain.AgencyUpdate{
		Name:        req.AgencyData.Name,
		Location:    req.AgencyData.Location,
		LogoURL:     req.AgencyData.LogoURL,
		Description: req.AgencyData.Description,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": dto.NewAgencyResponse(agency)})
}

// List handles GET /api/agencies.
func (h *AgenciesHandler) List(c *fiber.Ctx) error {
	verifiedOnly := c.QueryBool("verified")

	agencies, err := h.agencies.ListAgencies(c.UserContext(), verifiedOnly)
	if err != nil {
		return err
	}

	out := make([]dto.AgencyResponse, 0, len(agencies))
	for i := range agencies {
		out = append(out, dto.NewAgencyResponse(&agencies[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": out})
}
