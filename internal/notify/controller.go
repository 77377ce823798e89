package notify

import (
	"context"
	"fmt"

	"github.com/oshokin/typewise-alert/internal/domain/battery"
)

// ControllerHeader prefixes every frame sent to the battery controller.
const ControllerHeader uint16 = 0xfeed

// Controller prints controller frames such as "feed : 2".
type Controller struct {
	*console
}

// NewController creates a controller notifier writing to stdout unless overridden.
func NewController(opts ...Option) *Controller {
	return &Controller{console: newConsole(opts)}
}

// Notify writes the header and the breach code as hex tokens.
func (c *Controller) Notify(_ context.Context, breach battery.BreachType) error {
	frame := fmt.Sprintf("%x : %x\n", ControllerHeader, uint8(breach))

	if err := c.write([]byte(frame)); err != nil {
		return fmt.Errorf("write controller frame: %w", err)
	}

	return nil
}
