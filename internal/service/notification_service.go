package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/sublease-service/internal/auth"
	"github.com/spec-kit/sublease-service/internal/config"
	"github.com/spec-kit/sublease-service/internal/events"
	"github.com/spec-kit/sublease-service/internal/mail"
	"github.com/spec-kit/sublease-service/internal/repository"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// NotificationService batch-sends email to a list of addresses or resolved
// user ids. Admin only; sends are sequential and never short-circuit on a
// per-address failure.
type NotificationService struct {
	sender     mail.Sender
	profiles   repository.ProfileRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.EmailConfig
}

// NewNotificationService creates the service. sender may be nil when the
// provider credentials are absent; dispatch then fails with 500.
func NewNotificationService(sender mail.Sender, profiles repository.ProfileRepository, dispatcher events.Dispatcher, logger *zap.Logger, cfg config.EmailConfig) *NotificationService {
	return &NotificationService{
		sender:     sender,
		profiles:   profiles,
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// BatchInput describes one dispatch invocation.
type BatchInput struct {
	FromEmail string
	Subject   string
	Message   string
	Emails    []string
	UserIDs   []string
}

// SendResult is the per-address outcome.
type SendResult struct {
	Email      string `json:"email"`
	ProviderID string `json:"providerId,omitempty"`
}

// SendError is the per-address failure detail.
type SendError struct {
	Email string `json:"email"`
	Error string `json:"error"`
}

// BatchOutcome aggregates a dispatch run.
type BatchOutcome struct {
	Results     []SendResult `json:"results"`
	Errors      []SendError  `json:"errors"`
	TotalSent   int          `json:"totalSent"`
	TotalFailed int          `json:"totalFailed"`
}

// SendBatch dispatches one message per resolved address. The caller's role
// must already be resolved from the server-side session.
func (s *NotificationService) SendBatch(ctx context.Context, principal *auth.Principal, input BatchInput) (*BatchOutcome, error) {
	if principal == nil || principal.Identity == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	if err := auth.RequireAdmin(principal.Role); err != nil {
		return nil, err
	}
	if s.sender == nil {
		return nil, apperrors.NewUpstreamFailure("email provider not configured", mail.ErrNotConfigured)
	}

	addresses := input.Emails
	if len(addresses) == 0 && len(input.UserIDs) > 0 {
		resolved, err := s.profiles.EmailsByIDs(ctx, input.UserIDs)
		if err != nil {
			return nil, apperrors.NewUpstreamFailure("failed to resolve recipients", err)
		}
		// Resolution discards rows without a plausible address. Directly
		// supplied addresses are attempted as given.
		for _, address := range resolved {
			if strings.Contains(address, "@") {
				addresses = append(addresses, address)
			}
		}
	}

	from := input.FromEmail
	if from == "" {
		from = s.cfg.FromEmail
	}

	outcome := &BatchOutcome{Results: []SendResult{}, Errors: []SendError{}}
	for _, address := range addresses {
		providerID, err := s.sender.Send(ctx, from, address, input.Subject, input.Message)
		if err != nil {
			outcome.Errors = append(outcome.Errors, SendError{Email: address, Error: err.Error()})
			outcome.TotalFailed++
			s.logger.Warn("email send failed", zap.String("to", address), zap.Error(err))
			continue
		}
		outcome.Results = append(outcome.Results, SendResult{Email: address, ProviderID: providerID})
		outcome.TotalSent++
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventEmailBatchSent,
			RecordID:  "",
			ActorID:   principal.Identity.ID,
			Timestamp: time.Now(),
			Payload: events.EmailBatchSentPayload{
				TotalSent:   outcome.TotalSent,
				TotalFailed: outcome.TotalFailed,
			},
		})
	}
	return outcome, nil
}
