package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sublease-service/internal/api/dto"
	"github.com/spec-kit/sublease-service/internal/domain"
	"github.com/spec-kit/sublease-service/internal/service"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// ListingsHandler exposes agency-listing creation and browsing.
type ListingsHandler struct {
	listings *service.ListingService
}

// NewListingsHandler constructs handler.
func NewListingsHandler(listings *service.ListingService) *ListingsHandler {
	return &ListingsHandler{listings: listings}
}

// Create handles POST /api/create-agency-listing.
func (h *ListingsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateListingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.ListingData == nil || req.ListingData.AgencyID == "" || req.ListingData.Title == "" || req.UserToken == "" {
		return apperrors.NewBadRequest("listingData with agency_id and title, and userToken are required")
	}

	plans := make([]service.FloorPlanInput, 0, len(req.FloorPlans))
	for _, plan := range req.FloorPlans {
		plans = append(plans, service.FloorPlanInput{
			Name:      plan.Name,
			Bedrooms:  plan.Bedrooms,
			Bathrooms: plan.Bathrooms,
			Rent:      plan.Rent,
			SqFt:      plan.SqFt,
			ImageURL:  plan.ImageURL,
		})
	}

	listing, floorPlans, warning, err := h.listings.CreateAgencyListing(c.UserContext(), req.UserToken, service.ListingInput{
		AgencyID:    req.ListingData.AgencyID,
		Title:       req.ListingData.Title,
		Address:     req.ListingData.Address,
		Description: req.ListingData.Description,
		ImageURL:    req.ListingData.ImageURL,
		AvailableAt: req.ListingData.AvailableAt,
	}, plans)
	if err != nil {
		return err
	}

	response := fiber.Map{"success": true, "data": dto.NewListingResponse(listing, floorPlans)}
	if warning != "" {
		response["warning"] = warning
	}
	return c.JSON(response)
}

// List handles GET /api/listings.
func (h *ListingsHandler) List(c *fiber.Ctx) error {
	var (
		listings []dto.ListingResponse
		err      error
	)

	if agencyID := c.Query("agency_id"); agencyID != "" {
		var rows []domain.AgencyListing
		rows, err = h.listings.ListByAgency(c.UserContext(), agencyID)
		listings = mapListings(rows)
	} else {
		var rows []domain.AgencyListing
		rows, err = h.listings.ListListings(c.UserContext())
		listings = mapListings(rows)
	}
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": listings})
}

func mapListings(rows []domain.AgencyListing) []dto.ListingResponse {
	out := make([]dto.ListingResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewListingResponse(&rows[i], nil))
	}
	return out
}

// FloorPlans handles GET /api/listings/:id/floor-plans.
func (h *ListingsHandler) FloorPlans(c *fiber.Ctx) error {
	listingID := c.Params("id")
	if listingID == "" {
		return apperrors.NewBadRequest("listing id is required")
	}

	plans, err := h.listings.FloorPlans(c.UserContext(), listingID)
	if err != nil {
		return err
	}

	out := make([]dto.FloorPlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, dto.FloorPlanResponse{
			ID:        plan.ID,
			ListingID: plan.ListingID,
			Name:      plan.Name,
			Bedrooms:  plan.Bedrooms,
			Bathrooms: plan.Bathrooms,
			Rent:      plan.Rent,
			SqFt:      plan.SqFt,
			ImageURL:  plan.ImageURL,
		})
	}
	return c.JSON(fiber.Map{"success": true, "data": out})
}
