// Package session manages the simulated logged-in identity. There is no
// credential verification beyond presence checks; at most one identity is
// active per session and it is persisted so a reload picks it back up.
package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"hopebridge/internal/kv"
	"hopebridge/internal/utils"
	"hopebridge/pkg/types"
)

type Manager struct {
	mu     sync.Mutex
	logger *logrus.Logger
	store  kv.Store

	identity *types.Identity
	token    string

	now func() time.Time
}

// New restores any persisted identity from the store. The session token is
// minted fresh per process, so browser cookies from a previous run are
// rejected even though the identity itself survives.
func New(logger *logrus.Logger, store kv.Store) *Manager {
	m := &Manager{
		logger: logger,
		store:  store,
		now:    time.Now,
	}

	m.restore()

	return m
}

func (m *Manager) restore() {
	raw, ok, err := m.store.Get(kv.KeyIdentity)
	if err != nil {
		m.logger.WithError(err).Error("failed to read persisted identity")
		return
	}
	if !ok {
		return
	}

	identity := new(types.Identity)
	if err := json.Unmarshal([]byte(raw), identity); err != nil {
		m.logger.WithError(err).Error("failed to decode persisted identity")
		return
	}

	m.identity = identity
	m.token = utils.NanoID()

	m.logger.WithFields(logrus.Fields{
		"user_id": identity.ID,
		"role":    identity.Role,
	}).Info("restored identity")
}

// Login synthesizes a donor identity from the email address. Both fields are
// required but never verified.
func (m *Manager) Login(email, password string) (*types.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", types.ErrInvalidInput)
	}

	name, _, _ := strings.Cut(email, "@")

	return m.activate(&types.Identity{
		ID:    m.now().UnixMilli(),
		Name:  name,
		Email: email,
		Role:  types.RoleDonor,
	})
}

func (m *Manager) Register(name, email, password, role string) (*types.Identity, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" || role == "" {
		return nil, fmt.Errorf("%w: all fields are required", types.ErrInvalidInput)
	}

	parsed, ok := types.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", types.ErrInvalidInput, role)
	}

	return m.activate(&types.Identity{
		ID:    m.now().UnixMilli(),
		Name:  name,
		Email: email,
		Role:  parsed,
	})
}

func (m *Manager) activate(identity *types.Identity) (*types.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.identity = identity
	m.token = utils.NanoID()

	data, err := json.Marshal(identity)
	if err != nil {
		m.logger.WithError(err).Error("failed to encode identity")
	} else if err := m.store.Set(kv.KeyIdentity, string(data)); err != nil {
		// In-memory identity is authoritative for the session.
		m.logger.WithError(err).Error("failed to persist identity")
	}

	m.logger.WithFields(logrus.Fields{
		"user_id": identity.ID,
		"role":    identity.Role,
	}).Info("identity activated")

	out := *identity
	return &out, nil
}

// Logout clears the active identity and its persisted record. Calling it
// with no active identity is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.identity == nil {
		return
	}

	m.identity = nil
	m.token = ""

	if err := m.store.Remove(kv.KeyIdentity); err != nil {
		m.logger.WithError(err).Error("failed to remove persisted identity")
	}

	m.logger.Info("identity cleared")
}

// Current returns the active identity, or nil when anonymous.
func (m *Manager) Current() *types.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.identity == nil {
		return nil
	}

	out := *m.identity
	return &out
}

// Token returns the session token for the active identity, empty when
// anonymous.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.token
}

func (m *Manager) ValidToken(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.identity != nil && token != "" && token == m.token
}
