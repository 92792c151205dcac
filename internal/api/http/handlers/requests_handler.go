package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sublease-service/internal/api/dto"
	"github.com/spec-kit/sublease-service/internal/auth"
	"github.com/spec-kit/sublease-service/internal/service"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// RequestsHandler exposes tenant sublease-request CRUD. All mutating routes
// sit behind the auth middleware.
type RequestsHandler struct {
	requests *service.RequestService
}

// NewRequestsHandler constructs handler.
func NewRequestsHandler(requests *service.RequestService) *RequestsHandler {
	return &RequestsHandler{requests: requests}
}

// Create handles POST /api/requests.
func (h *RequestsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.RequestPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.Title == "" {
		return apperrors.NewBadRequest("title is required")
	}

	request, err := h.requests.CreateRequest(c.UserContext(), principal.Identity, service.RequestInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		MoveIn:      req.MoveIn,
		MoveOut:     req.MoveOut,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": dto.NewRequestResponse(request)})
}

// Update handles PUT /api/requests/:id.
func (h *RequestsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	requestID := c.Params("id")
	if requestID == "" {
		return apperrors.NewBadRequest("request id is required")
	}

	var req dto.RequestPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	request, err := h.requests.UpdateRequest(c.UserContext(), principal.Identity, requestID, service.RequestInput{
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		MoveIn:      req.MoveIn,
		MoveOut:     req.MoveOut,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewRequestResponse(request)})
}

// Delete handles DELETE /api/requests/:id.
func (h *RequestsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	requestID := c.Params("id")
	if requestID == "" {
		return apperrors.NewBadRequest("request id is required")
	}

	if err := h.requests.DeleteRequest(c.UserContext(), principal.Identity, requestID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// List handles GET /api/requests.
func (h *RequestsHandler) List(c *fiber.Ctx) error {
	requests, err := h.requests.ListRequests(c.UserContext())
	if err != nil {
		return err
	}

	out := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, dto.NewRequestResponse(&requests[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": out})
}
