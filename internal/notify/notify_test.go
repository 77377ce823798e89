package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/typewise-alert/internal/domain/battery"
)

var errTestWrite = errors.New("test write error")

// failingWriter rejects every write.
type failingWriter struct{}

// Write always fails with errTestWrite.
func (failingWriter) Write([]byte) (int, error) { return 0, errTestWrite }

// TestController_Frames checks the frame for every breach type.
func TestController_Frames(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	c := NewController(WithWriter(&buf))

	for _, b := range []battery.BreachType{battery.Normal, battery.TooLow, battery.TooHigh} {
		require.NoError(t, c.Notify(context.Background(), b))
	}

	require.Equal(t, "feed : 0\nfeed : 1\nfeed : 2\n", buf.String())
}

// TestEmail_Messages checks the messages and that Normal stays silent.
func TestEmail_Messages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	e := NewEmail("", WithWriter(&buf))
	require.Equal(t, DefaultRecipient, e.Recipient())

	require.NoError(t, e.Notify(context.Background(), battery.Normal))
	require.Empty(t, buf.String())

	require.NoError(t, e.Notify(context.Background(), battery.TooLow))
	require.Equal(t, "To: a.b@c.com\nHi, the temperature is too low\n", buf.String())

	buf.Reset()
	require.NoError(t, e.Notify(context.Background(), battery.TooHigh))
	require.Equal(t, "To: a.b@c.com\nHi, the temperature is too high\n", buf.String())
}

// TestEmail_CustomRecipientAndUnknownBreach covers the configured recipient and an invalid breach.
func TestEmail_CustomRecipientAndUnknownBreach(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	e := NewEmail("ops@example.com", WithWriter(&buf))

	require.NoError(t, e.Notify(context.Background(), battery.TooHigh))
	require.True(t, strings.HasPrefix(buf.String(), "To: ops@example.com\n"))

	err := e.Notify(context.Background(), battery.BreachType(9))
	require.ErrorIs(t, err, battery.ErrUnknownBreachType)
}

// TestNotify_WriteErrors ensures writer failures are returned wrapped.
func TestNotify_WriteErrors(t *testing.T) {
	t.Parallel()

	err := NewController(WithWriter(failingWriter{})).Notify(context.Background(), battery.TooHigh)
	require.ErrorIs(t, err, errTestWrite)

	err = NewEmail("", WithWriter(failingWriter{})).Notify(context.Background(), battery.TooLow)
	require.ErrorIs(t, err, errTestWrite)
}

// TestEmail_ConcurrentLinesStayTogether ensures concurrent alerts never interleave.
func TestEmail_ConcurrentLinesStayTogether(t *testing.T) {
	t.Parallel()

	var (
		buf bytes.Buffer
		wg  sync.WaitGroup
	)

	e := NewEmail("", WithWriter(&buf))

	for i := range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			breach := battery.TooLow
			if i%2 == 0 {
				breach = battery.TooHigh
			}

			_ = e.Notify(context.Background(), breach)
		}()
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 100)

	for i := 0; i < len(lines); i += 2 {
		require.Equal(t, "To: a.b@c.com", lines[i])
		require.True(t, strings.HasPrefix(lines[i+1], "Hi, the temperature is too "))
	}
}
