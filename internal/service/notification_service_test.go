package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/sublease-service/internal/auth"
	"github.com/spec-kit/sublease-service/internal/config"
	"github.com/spec-kit/sublease-service/internal/domain"
	"github.com/spec-kit/sublease-service/internal/mail"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

func adminPrincipal() *auth.Principal {
	return &auth.Principal{
		Identity: &domain.Identity{ID: "A1", Email: "admin@sublease.app"},
		Role:     domain.RoleAdmin,
	}
}

func newNotificationService(sender mail.Sender, profiles *fakeProfileRepo) *NotificationService {
	return NewNotificationService(sender, profiles, nil, zap.NewNop(), config.EmailConfig{FromEmail: "noreply@sublease.app"})
}

func TestSendBatch_ContinuesPastFailures(t *testing.T) {
	sender := newFakeSender("bad")
	svc := newNotificationService(sender, newFakeProfileRepo())

	outcome, err := svc.SendBatch(context.Background(), adminPrincipal(), BatchInput{
		Subject: "Hello",
		Message: "<p>Hi</p>",
		Emails:  []string{"a@x.com", "bad", "c@y.com"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, outcome.TotalSent)
	require.Equal(t, 1, outcome.TotalFailed)
	require.Equal(t, 3, outcome.TotalSent+outcome.TotalFailed)
	require.Len(t, outcome.Results, 2)
	require.Len(t, outcome.Errors, 1)
	require.Equal(t, "bad", outcome.Errors[0].Email)
	require.Equal(t, []string{"a@x.com", "c@y.com"}, sender.sent)
}

func TestSendBatch_ResolvesUserIDsAndDropsImplausibleAddresses(t *testing.T) {
	profiles := newFakeProfileRepo()
	profiles.profiles["U1"] = &domain.Profile{ID: "U1", Email: "u1@psu.edu"}
	profiles.profiles["U2"] = &domain.Profile{ID: "U2", Email: "not-an-address"}
	profiles.profiles["U3"] = &domain.Profile{ID: "U3", Email: "u3@psu.edu"}

	sender := newFakeSender()
	svc := newNotificationService(sender, profiles)

	outcome, err := svc.SendBatch(context.Background(), adminPrincipal(), BatchInput{
		Subject: "Hello",
		Message: "body",
		UserIDs: []string{"U1", "U2", "U3"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, outcome.TotalSent)
	require.Zero(t, outcome.TotalFailed)
	require.ElementsMatch(t, []string{"u1@psu.edu", "u3@psu.edu"}, sender.sent)
}

func TestSendBatch_NonAdminForbidden(t *testing.T) {
	sender := newFakeSender()
	svc := newNotificationService(sender, newFakeProfileRepo())

	principal := &auth.Principal{
		Identity: &domain.Identity{ID: "U1", Email: "u1@psu.edu"},
		Role:     domain.RoleTenant,
	}
	_, err := svc.SendBatch(context.Background(), principal, BatchInput{
		Subject: "Hello",
		Message: "body",
		Emails:  []string{"a@x.com"},
	})
	require.Error(t, err)
	require.Equal(t, http.StatusForbidden, apperrors.ToDomainError(err).HTTPStatus)
	require.Empty(t, sender.sent)
}

func TestSendBatch_MissingProviderCredentials(t *testing.T) {
	svc := newNotificationService(nil, newFakeProfileRepo())

	_, err := svc.SendBatch(context.Background(), adminPrincipal(), BatchInput{
		Subject: "Hello",
		Message: "body",
		Emails:  []string{"a@x.com"},
	})
	require.Error(t, err)
	require.Equal(t, http.StatusInternalServerError, apperrors.ToDomainError(err).HTTPStatus)
}
