package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/spec-kit/sublease-service/internal/config"
)

// ErrNotConfigured signals missing provider credentials.
var ErrNotConfigured = errors.New("email provider not configured")

// SESSender sends email through AWS SESv2.
type SESSender struct {
	client  *sesv2.Client
	replyTo string
}

// NewSESSender loads the default AWS credential chain for the configured
// region.
func NewSESSender(ctx context.Context, cfg config.EmailConfig) (*SESSender, error) {
	if cfg.FromEmail == "" {
		return nil, ErrNotConfigured
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SESSender{
		client:  sesv2.NewFromConfig(awsCfg),
		replyTo: cfg.ReplyTo,
	}, nil
}

// Send delivers one message and returns the SES message id.
func (s *SESSender) Send(ctx context.Context, from, to, subject, body string) (string, error) {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination:      &sestypes.Destination{ToAddresses: []string{to}},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body:    &sestypes.Body{Html: &sestypes.Content{Data: aws.String(body)}},
			},
		},
	}
	if s.replyTo != "" {
		input.ReplyToAddresses = []string{s.replyTo}
	}

	out, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
