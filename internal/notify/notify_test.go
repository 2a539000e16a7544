package notify

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopebridge/pkg/types"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNotifyShowsMessage(t *testing.T) {
	c := New(testLogger(), time.Second)

	c.Notify("Login successful!", types.SeveritySuccess)

	current := c.Current()
	require.NotNil(t, current)
	assert.Equal(t, "Login successful!", current.Message)
	assert.Equal(t, types.SeveritySuccess, current.Severity)
}

func TestNotifySupersedes(t *testing.T) {
	c := New(testLogger(), time.Second)

	c.Notify("first", types.SeverityInfo)
	c.Notify("second", types.SeverityError)

	current := c.Current()
	require.NotNil(t, current)
	assert.Equal(t, "second", current.Message)
	assert.Equal(t, types.SeverityError, current.Severity)
}

func TestExpiryWithoutTimer(t *testing.T) {
	c := New(testLogger(), 3*time.Second)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Notify("hello", types.SeverityInfo)

	c.now = func() time.Time { return base.Add(2 * time.Second) }
	assert.NotNil(t, c.Current())

	c.now = func() time.Time { return base.Add(3 * time.Second) }
	assert.Nil(t, c.Current())
}

func TestTimerDismisses(t *testing.T) {
	c := New(testLogger(), 30*time.Millisecond)

	c.Notify("short lived", types.SeverityInfo)

	assert.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.current == nil
	}, time.Second, 10*time.Millisecond)
}

func TestNewerMessageResetsTimer(t *testing.T) {
	c := New(testLogger(), 200*time.Millisecond)

	c.Notify("first", types.SeverityInfo)
	time.Sleep(120 * time.Millisecond)
	c.Notify("second", types.SeverityInfo)

	// The first message's timer fires now but must not clear the second.
	time.Sleep(120 * time.Millisecond)

	current := c.Current()
	require.NotNil(t, current)
	assert.Equal(t, "second", current.Message)
}

func TestDefaultTTL(t *testing.T) {
	c := New(testLogger(), 0)
	assert.Equal(t, DefaultTTL, c.ttl)
}
