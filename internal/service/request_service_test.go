package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/sublease-service/internal/domain"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

func TestRequestOwnershipGate(t *testing.T) {
	repo := newFakeRequestRepo()
	svc := NewRequestService(repo, nil)

	owner := &domain.Identity{ID: "U1", Email: "u1@psu.edu"}
	other := &domain.Identity{ID: "U2", Email: "u2@psu.edu"}

	request, err := svc.CreateRequest(context.Background(), owner, RequestInput{Title: "Summer sublet", Budget: 700})
	require.NoError(t, err)
	require.Equal(t, "U1", request.UserID)

	_, err = svc.UpdateRequest(context.Background(), other, request.ID, RequestInput{Title: "Hijacked"})
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)
	require.Equal(t, "Summer sublet", repo.requests[request.ID].Title)

	err = svc.DeleteRequest(context.Background(), other, request.ID)
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)
	require.Contains(t, repo.requests, request.ID)

	updated, err := svc.UpdateRequest(context.Background(), owner, request.ID, RequestInput{Title: "Fall sublet", Budget: 800})
	require.NoError(t, err)
	require.Equal(t, "Fall sublet", updated.Title)

	require.NoError(t, svc.DeleteRequest(context.Background(), owner, request.ID))
	require.NotContains(t, repo.requests, request.ID)
}
