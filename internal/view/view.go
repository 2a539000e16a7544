// Package view tracks which section and dashboard tab are active and which
// filter is applied. The state is transient and resets to home/overview with
// an empty filter on every load.
package view

import (
	"sync"

	"github.com/sirupsen/logrus"

	"hopebridge/pkg/types"
)

// Notifier is the slice of the notification channel the controller needs.
type Notifier interface {
	Notify(message string, severity types.Severity)
}

// IdentitySource reports the active identity, nil when anonymous.
type IdentitySource interface {
	Current() *types.Identity
}

type Controller struct {
	mu       sync.Mutex
	logger   *logrus.Logger
	notifier Notifier
	identity IdentitySource

	section types.Section
	tab     types.DashboardTab
	filter  types.NeedFilter
}

func New(logger *logrus.Logger, notifier Notifier, identity IdentitySource) *Controller {
	return &Controller{
		logger:   logger,
		notifier: notifier,
		identity: identity,
		section:  types.SectionHome,
		tab:      types.TabOverview,
	}
}

// Navigate makes the named section active. Unknown names leave the state
// unchanged. Entering the dashboard without an active identity redirects to
// home and emits one error notification instead of rendering dashboard
// content.
func (c *Controller) Navigate(raw string) error {
	section, ok := types.ParseSection(raw)
	if !ok {
		c.logger.WithField("section", raw).Warn("navigation to unknown section")
		return types.ErrUnknownSection
	}

	if section == types.SectionDashboard && c.identity.Current() == nil {
		c.mu.Lock()
		c.section = types.SectionHome
		c.mu.Unlock()

		c.notifier.Notify("Please login to access dashboard", types.SeverityError)
		return types.ErrUnauthenticated
	}

	c.mu.Lock()
	c.section = section
	c.mu.Unlock()

	return nil
}

// SetFilter replaces the whole filter at once; unset fields mean no
// constraint.
func (c *Controller) SetFilter(filter types.NeedFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filter = filter
}

// SwitchTab activates a dashboard tab. It is a no-op when no identity is
// active; the dashboard itself is unreachable anonymously.
func (c *Controller) SwitchTab(raw string) error {
	tab, ok := types.ParseDashboardTab(raw)
	if !ok {
		c.logger.WithField("tab", raw).Warn("switch to unknown dashboard tab")
		return types.ErrUnknownTab
	}

	if c.identity.Current() == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tab = tab
	return nil
}

func (c *Controller) Section() types.Section {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.section
}

func (c *Controller) Tab() types.DashboardTab {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tab
}

func (c *Controller) Filter() types.NeedFilter {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.filter
}
