package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sublease-service/internal/domain"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal is the authenticated caller with its role resolved once for the
// lifetime of the request.
type Principal struct {
	Identity *domain.Identity
	Role     domain.Role
}

// Middleware validates the Authorization header and stores the principal in
// the request context. Used by routes that derive the caller from the
// server-side session rather than a body token.
type Middleware struct {
	verifier TokenVerifier
	admins   *AdminList
}

// NewMiddleware constructs the middleware.
func NewMiddleware(verifier TokenVerifier, admins *AdminList) *Middleware {
	return &Middleware{verifier: verifier, admins: admins}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	identity, err := m.verifier.Verify(c.UserContext(), parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, &Principal{
		Identity: identity,
		Role:     m.admins.RoleFor(identity),
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
