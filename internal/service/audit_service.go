package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/sublease-service/internal/events"
)

// AuditService records every privileged write as a structured log entry.
// Since the elevated pool bypasses the store's own row policies, the event
// stream is the audit trail for who mutated what.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger) *AuditService {
	return &AuditService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to every event type.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventProfileUpserted,
		events.EventAgencyCreated,
		events.EventAgencyUpdated,
		events.EventAgencyVerified,
		events.EventUserVerified,
		events.EventListingCreated,
		events.EventRequestCreated,
		events.EventEmailBatchSent,
	} {
		a.dispatcher.Subscribe(eventType, a.handleEvent)
	}
}

func (a *AuditService) handleEvent(ctx context.Context, event events.Event) error {
	a.logger.Info("privileged write",
		zap.String("event", string(event.Type)),
		zap.String("record_id", event.RecordID),
		zap.String("actor_id", event.ActorID),
		zap.Any("payload", event.Payload))
	return nil
}
