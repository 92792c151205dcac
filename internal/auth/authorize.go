package auth

import (
	"github.com/spec-kit/sublease-service/internal/domain"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// RequireOwner allows the operation only when the verified identity matches
// the record's declared owner. Every ownership-gated write goes through this
// single helper so the check cannot drift between endpoints.
func RequireOwner(identity *domain.Identity, ownerID, message string) error {
	if identity == nil || ownerID == "" || identity.ID != ownerID {
		return apperrors.NewForbidden(message)
	}
	return nil
}

// RequireAdmin allows the operation only for identities resolved to the
// admin role.
func RequireAdmin(role domain.Role) error {
	if role != domain.RoleAdmin {
		return apperrors.NewForbidden("admin access required")
	}
	return nil
}
