package interfaces

import "context"

// OutboundMail is one plain-text notification. The sender address comes
// from dispatcher configuration; only the display name varies per event.
type OutboundMail struct {
	Subject    string
	Body       string
	To         []string
	SenderName string
}

// IMailSender abstracts the SMTP transport. Implementations must refuse a
// send with no non-empty recipient rather than attempt it. A returned
// error is a transport failure; callers treat it as a warning, not an
// abort.
type IMailSender interface {
	Send(ctx context.Context, m OutboundMail) error
}
