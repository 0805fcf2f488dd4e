// Package noop provides an EmailSender that logs instead of sending.
// Used in demo mode and local development.
package noop

import (
	"context"
	"log"

	"github.com/yongxin12/Macrohard/internal/port"
)

type noopSender struct{}

// NewNoopSender creates an EmailSender that logs messages instead of sending them.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) Send(ctx context.Context, to, subject, body string, attachmentName string, attachment []byte) error {
	log.Printf("[NOOP EMAIL] To: %s", to)
	log.Printf("[NOOP EMAIL] Subject: %s", subject)
	log.Printf("[NOOP EMAIL] Body: %s", body)
	if len(attachment) > 0 {
		log.Printf("[NOOP EMAIL] Attachment: %s (%d bytes)", attachmentName, len(attachment))
	}
	return nil
}
