package notify

import (
	"context"
	"fmt"

	"github.com/oshokin/typewise-alert/internal/domain/battery"
)

// DefaultRecipient receives e-mail alerts when none is configured.
const DefaultRecipient = "a.b@c.com"

// Email prints an e-mail alert for out-of-range breaches.
type Email struct {
	*console

	// recipient is printed on the To: line.
	recipient string
}

// NewEmail creates an e-mail notifier for recipient, or DefaultRecipient when empty.
func NewEmail(recipient string, opts ...Option) *Email {
	if recipient == "" {
		recipient = DefaultRecipient
	}

	return &Email{
		console:   newConsole(opts),
		recipient: recipient,
	}
}

// Recipient returns the address alerts are sent to.
func (e *Email) Recipient() string {
	return e.recipient
}

// Notify prints the message for TooLow and TooHigh; Normal is silent.
func (e *Email) Notify(_ context.Context, breach battery.BreachType) error {
	var condition string

	switch breach {
	case battery.Normal:
		return nil
	case battery.TooLow:
		condition = "too low"
	case battery.TooHigh:
		condition = "too high"
	default:
		return fmt.Errorf("%w: %v", battery.ErrUnknownBreachType, breach)
	}

	message := fmt.Sprintf("To: %s\nHi, the temperature is %s\n", e.recipient, condition)

	if err := e.write([]byte(message)); err != nil {
		return fmt.Errorf("write e-mail alert: %w", err)
	}

	return nil
}
