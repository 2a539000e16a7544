// Package notify holds the single user-facing toast message. A new message
// supersedes the visible one and restarts the auto-dismiss timer; there is
// no queue.
package notify

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"hopebridge/internal/metrics"
	"hopebridge/pkg/types"
)

const DefaultTTL = 3 * time.Second

type Channel struct {
	mu     sync.Mutex
	logger *logrus.Logger
	ttl    time.Duration

	current *types.Notification
	// gen marks the notification a pending timer belongs to, so a stale
	// timer never clears a newer message.
	gen uint64

	now func() time.Time
}

func New(logger *logrus.Logger, ttl time.Duration) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Channel{
		logger: logger,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Notify replaces any visible notification and restarts the dismiss timer.
func (c *Channel) Notify(message string, severity types.Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	gen := c.gen

	c.current = &types.Notification{
		Message:  message,
		Severity: severity,
		ShownAt:  c.now(),
	}

	metrics.NotificationsTotal.WithLabelValues(string(severity)).Inc()

	c.logger.WithFields(logrus.Fields{
		"severity": severity,
		"message":  message,
	}).Debug("notification shown")

	time.AfterFunc(c.ttl, func() {
		c.dismiss(gen)
	})
}

func (c *Channel) dismiss(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen == c.gen {
		c.current = nil
	}
}

// Current returns the visible notification, or nil once it has expired. The
// expiry check does not rely on the timer having fired.
func (c *Channel) Current() *types.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return nil
	}

	if c.now().Sub(c.current.ShownAt) >= c.ttl {
		c.current = nil
		return nil
	}

	out := *c.current
	return &out
}
