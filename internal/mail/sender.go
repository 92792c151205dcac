package mail

import "context"

// Sender delivers one transactional email and returns the provider's
// message id.
type Sender interface {
	Send(ctx context.Context, from, to, subject, body string) (string, error)
}
