package notify

import (
	"io"
	"os"
	"sync"
)

// console holds the output shared by console notifiers.
type console struct {
	// out receives the rendered alert.
	out io.Writer
	// mu keeps each alert's lines together under concurrent use.
	mu sync.Mutex
}

// Option configures a console notifier.
type Option func(*console)

// WithWriter redirects output away from stdout.
func WithWriter(w io.Writer) Option {
	return func(c *console) {
		if w != nil {
			c.out = w
		}
	}
}

// newConsole applies options on top of the stdout default.
func newConsole(opts []Option) *console {
	c := &console{out: os.Stdout}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// write renders one alert atomically with respect to other writers of c.
func (c *console) write(p []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.out.Write(p)

	return err
}
