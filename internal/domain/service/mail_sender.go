package service

import "context"

// MailMessage is the contract consumed from the mail collaborator.
type MailMessage struct {
	To      string
	Subject string
	Text    string
}

// MailSender dispatches outbound mail. The reset flow treats delivery as an
// external dependency: a failed Send triggers a compensating rollback of the
// pending reset token.
type MailSender interface {
	Send(ctx context.Context, msg MailMessage) error

	// Configured reports whether real delivery credentials are present.
	// When false, the reset flow skips dispatch and discloses the raw token
	// in the response (development convenience, not a security design).
	Configured() bool
}
