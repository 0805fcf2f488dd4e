package port

import "context"

// EmailSender delivers generated reports to a recipient.
type EmailSender interface {
	// Send delivers a message with an optional attachment. attachment may be
	// nil; attachmentName is ignored when it is.
	Send(ctx context.Context, to, subject, body string, attachmentName string, attachment []byte) error
}
