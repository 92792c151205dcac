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

func newAgencyService(verifier auth.TokenVerifier, repo *fakeAgencyRepo, admins ...string) *AgencyService {
	return NewAgencyService(AgencyDependencies{
		Verifier:   verifier,
		Admins:     auth.NewAdminList(admins),
		AgencyRepo: repo,
	})
}

func TestCreateAgency_Success(t *testing.T) {
	verifier := newFakeVerifier()
	verifier.add("T1", "U1", "u1@psu.edu")
	repo := newFakeAgencyRepo()
	svc := newAgencyService(verifier, repo)

	agency, err := svc.CreateAgency(context.Background(), "T1", AgencyInput{UserID: "U1", Name: "Acme"})
	require.NoError(t, err)
	require.Equal(t, "U1", agency.UserID)
	require.Equal(t, "Acme", agency.Name)
	require.False(t, agency.IsVerified)
	require.NotEmpty(t, agency.ID)
}

func TestCreateAgency_OwnerMismatch(t *testing.T) {
	verifier := newFakeVerifier()
	verifier.add("T2", "U2", "u2@psu.edu")
	repo := newFakeAgencyRepo()
	svc := newAgencyService(verifier, repo)

	_, err := svc.CreateAgency(context.Background(), "T2", AgencyInput{UserID: "U1", Name: "Acme"})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
	require.Equal(t, "Agency user_id does not match authenticated user", domainErr.Message)
	require.Zero(t, repo.mutations)
}

func TestCreateAgency_InvalidTokenNoStoreCalls(t *testing.T) {
	repo := newFakeAgencyRepo()
	svc := newAgencyService(newFakeVerifier(), repo)

	_, err := svc.CreateAgency(context.Background(), "", AgencyInput{UserID: "U1", Name: "Acme"})
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, apperrors.ToDomainError(err).HTTPStatus)
	require.Zero(t, repo.mutations)
}

func TestUpdateAgency_NotOwner(t *testing.T) {
	verifier := newFakeVerifier()
	verifier.add("T1", "U1", "u1@psu.edu")
	verifier.add("T2", "U2", "u2@psu.edu")

	repo := newFakeAgencyRepo()
	svc := newAgencyService(verifier, repo)

	agency, err := svc.CreateAgency(context.Background(), "T1", AgencyInput{UserID: "U1", Name: "Acme"})
	require.NoError(t, err)

	before := repo.mutations
	_, err = svc.UpdateAgency(context.Background(), "T2", agency.ID, domain.AgencyUpdate{Name: "Hijacked"})
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)
	require.Equal(t, before, repo.mutations)
	require.Equal(t, "Acme", repo.agencies[agency.ID].Name)
}

func TestUpdateAgency_OwnerCanEditProfileFields(t *testing.T) {
	verifier := newFakeVerifier()
	verifier.add("T1", "U1", "u1@psu.edu")

	repo := newFakeAgencyRepo()
	svc := newAgencyService(verifier, repo)

	agency, err := svc.CreateAgency(context.Background(), "T1", AgencyInput{UserID: "U1", Name: "Acme"})
	require.NoError(t, err)

	updated, err := svc.UpdateAgency(context.Background(), "T1", agency.ID, domain.AgencyUpdate{
		Name:     "Acme Housing",
		Location: "State College, PA",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme Housing", updated.Name)
	require.Equal(t, "State College, PA", updated.Location)
	require.False(t, updated.IsVerified)
}

func TestVerifyAgency_AdminGate(t *testing.T) {
	verifier := newFakeVerifier()
	verifier.add("T1", "U1", "u1@psu.edu")
	verifier.add("TA", "A1", "admin@sublease.app")

	repo := newFakeAgencyRepo()
	svc := newAgencyService(verifier, repo, "admin@sublease.app")

	agency, err := svc.CreateAgency(context.Background(), "T1", AgencyInput{UserID: "U1", Name: "Acme"})
	require.NoError(t, err)

	err = svc.VerifyAgency(context.Background(), "T1", agency.ID)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)
	require.False(t, repo.agencies[agency.ID].IsVerified)

	require.NoError(t, svc.VerifyAgency(context.Background(), "TA", agency.ID))
	require.True(t, repo.agencies[agency.ID].IsVerified)
}
