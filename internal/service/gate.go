package service

import (
	"context"

	"github.com/spec-kit/sublease-service/internal/auth"
	"github.com/spec-kit/sublease-service/internal/domain"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// accessGate is the shared first step of every privileged write: exchange
// the body token for an identity and resolve its role exactly once. Nothing
// touches the record store until this succeeds.
type accessGate struct {
	verifier auth.TokenVerifier
	admins   *auth.AdminList
}

func (g accessGate) authenticate(ctx context.Context, token string) (*domain.Identity, domain.Role, error) {
	identity, err := g.verifier.Verify(ctx, token)
	if err != nil {
		return nil, "", apperrors.NewUnauthorized("invalid or missing token")
	}
	return identity, g.admins.RoleFor(identity), nil
}
