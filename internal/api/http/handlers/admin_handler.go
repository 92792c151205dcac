package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sublease-service/internal/api/dto"
	"github.com/spec-kit/sublease-service/internal/auth"
	"github.com/spec-kit/sublease-service/internal/service"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// AdminHandler exposes the administrator-gated endpoints: verification
// toggles and batch email dispatch.
type AdminHandler struct {
	profiles      *service.ProfileService
	agencies      *service.AgencyService
	notifications *service.NotificationService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(profiles *service.ProfileService, agencies *service.AgencyService, notifications *service.NotificationService) *AdminHandler {
	return &AdminHandler{profiles: profiles, agencies: agencies, notifications: notifications}
}

// VerifyAgency handles POST /api/verify-agency.
func (h *AdminHandler) VerifyAgency(c *fiber.Ctx) error {
	var req dto.VerifyAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.AgencyID == "" || req.AdminToken == "" {
		return apperrors.NewBadRequest("agencyId and adminToken are required")
	}

	if err := h.agencies.VerifyAgency(c.UserContext(), req.AdminToken, req.AgencyID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// VerifyUser handles POST /api/verify-user.
func (h *AdminHandler) VerifyUser(c *fiber.Ctx) error {
	var req dto.VerifyUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.UserID == "" || req.AdminToken == "" {
		return apperrors.NewBadRequest("userId and adminToken are required")
	}

	if err := h.profiles.VerifyUser(c.UserContext(), req.AdminToken, req.UserID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// SendEmails handles POST /api/send-emails. Identity comes from the
// Authorization header via the auth middleware.
func (h *AdminHandler) SendEmails(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SendEmailsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.Type != "invite" && req.Type != "blast" {
		return apperrors.NewBadRequest("type must be invite or blast")
	}
	if req.Subject == "" || req.Message == "" {
		return apperrors.NewBadRequest("subject and message are required")
	}
	if len(req.Emails) == 0 && len(req.UserIDs) == 0 {
		return apperrors.NewBadRequest("emails or userIds are required")
	}

	outcome, err := h.notifications.SendBatch(c.UserContext(), principal, service.BatchInput{
		FromEmail: req.FromEmail,
		Subject:   req.Subject,
		Message:   req.Message,
		Emails:    req.Emails,
		UserIDs:   req.UserIDs,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"results":     outcome.Results,
		"errors":      outcome.Errors,
		"totalSent":   outcome.TotalSent,
		"totalFailed": outcome.TotalFailed,
	})
}
