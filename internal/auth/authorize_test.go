package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/sublease-service/internal/domain"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

func TestRequireOwner(t *testing.T) {
	identity := &domain.Identity{ID: "U1", Email: "u1@psu.edu"}

	require.NoError(t, RequireOwner(identity, "U1", "denied"))

	err := RequireOwner(identity, "U2", "denied")
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
	require.Equal(t, "denied", domainErr.Message)

	require.Error(t, RequireOwner(nil, "U1", "denied"))
	require.Error(t, RequireOwner(identity, "", "denied"))
}

func TestRequireAdmin(t *testing.T) {
	require.NoError(t, RequireAdmin(domain.RoleAdmin))
	require.Error(t, RequireAdmin(domain.RoleTenant))
	require.Error(t, RequireAdmin(domain.RoleAgency))
}

func TestAdminListExactMatch(t *testing.T) {
	admins := NewAdminList([]string{"admin@sublease.app", "ops@sublease.app"})

	require.True(t, admins.Contains("admin@sublease.app"))
	require.False(t, admins.Contains("Admin@sublease.app"))
	require.False(t, admins.Contains("admin@sublease.app "))
	require.False(t, admins.Contains("someone@psu.edu"))
}

func TestRoleForResolvesAdmins(t *testing.T) {
	admins := NewAdminList([]string{"admin@sublease.app"})

	require.Equal(t, domain.RoleAdmin, admins.RoleFor(&domain.Identity{ID: "A1", Email: "admin@sublease.app"}))
	require.Equal(t, domain.RoleTenant, admins.RoleFor(&domain.Identity{ID: "U1", Email: "u1@psu.edu"}))
	require.Equal(t, domain.RoleTenant, admins.RoleFor(nil))
}
