package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/sublease-service/internal/auth"
	"github.com/spec-kit/sublease-service/internal/domain"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

func newProfileService(verifier auth.TokenVerifier, repo *fakeProfileRepo, admins ...string) *ProfileService {
	return NewProfileService(ProfileDependencies{
		Verifier:    verifier,
		Admins:      auth.NewAdminList(admins),
		ProfileRepo: repo,
	})
}

func TestCreateProfile_InvalidTokenNoStoreCalls(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(newFakeVerifier(), repo)

	_, err := svc.CreateProfile(context.Background(), "bogus", ProfileInput{ID: "U1"})
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)
	require.Zero(t, repo.mutations)
}

func TestCreateProfile_IDMismatch(t *testing.T) {
	verifier := newFakeVerifier()
	verifier.add("T1", "U1", "u1@psu.edu")
	repo := newFakeProfileRepo()
	svc := newProfileService(verifier, repo)

	_, err := svc.CreateProfile(context.Background(), "T1", ProfileInput{ID: "U2"})
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)
	require.Zero(t, repo.mutations)
}

func TestCreateProfile_UpsertIsIdempotent(t *testing.T) {
	verifier := newFakeVerifier()
	verifier.add("T1", "U1", "u1@psu.edu")
	repo := newFakeProfileRepo()
	svc := newProfileService(verifier, repo)

	input := ProfileInput{ID: "U1", Email: "u1@psu.edu", FullName: "Uma One", Role: domain.ProfileRoleTenant}

	first, err := svc.CreateProfile(context.Background(), "T1", input)
	require.NoError(t, err)

	second, err := svc.CreateProfile(context.Background(), "T1", input)
	require.NoError(t, err)

	require.Equal(t, first.ID, second.ID)
	require.Equal(t, first.Email, second.Email)
	require.Equal(t, first.FullName, second.FullName)
	require.Len(t, repo.profiles, 1)
}

func TestCreateProfile_DefaultsRoleToTenant(t *testing.T) {
	verifier := newFakeVerifier()
	verifier.add("T1", "U1", "u1@psu.edu")
	repo := newFakeProfileRepo()
	svc := newProfileService(verifier, repo)

	profile, err := svc.CreateProfile(context.Background(), "T1", ProfileInput{ID: "U1", Email: "u1@psu.edu"})
	require.NoError(t, err)
	require.Equal(t, domain.ProfileRoleTenant, profile.Role)
}

func TestVerifyUser_AdminOnly(t *testing.T) {
	verifier := newFakeVerifier()
	verifier.add("TA", "A1", "admin@sublease.app")
	verifier.add("TU", "U1", "u1@psu.edu")

	repo := newFakeProfileRepo()
	repo.profiles["U1"] = &domain.Profile{ID: "U1", Email: "u1@psu.edu"}
	svc := newProfileService(verifier, repo, "admin@sublease.app")

	err := svc.VerifyUser(context.Background(), "TU", "U1")
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)
	require.False(t, repo.profiles["U1"].IsVerified)

	require.NoError(t, svc.VerifyUser(context.Background(), "TA", "U1"))
	require.True(t, repo.profiles["U1"].IsVerified)
}

func TestVerifyUser_AllowListIsCaseSensitive(t *testing.T) {
	verifier := newFakeVerifier()
	verifier.add("TA", "A1", "Admin@Sublease.App")

	repo := newFakeProfileRepo()
	repo.profiles["U1"] = &domain.Profile{ID: "U1"}
	svc := newProfileService(verifier, repo, "admin@sublease.app")

	err := svc.VerifyUser(context.Background(), "TA", "U1")
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)
}
