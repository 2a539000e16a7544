// Package ledger holds the in-memory catalog of NGOs and needs and its
// mutation rules. The in-memory state is authoritative for the session; the
// key-value store is a best-effort bridge for user-posted needs.
package ledger

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"hopebridge/internal/kv"
	"hopebridge/internal/seed"
	"hopebridge/pkg/types"
)

type Store struct {
	mu     sync.Mutex
	logger *logrus.Logger
	store  kv.Store

	ngos  []*types.NGO
	needs []*types.Need

	now func() time.Time
}

// New builds the catalog from the seed set plus any persisted user-posted
// needs. A corrupt persisted blob is logged and dropped rather than failing
// the load.
func New(logger *logrus.Logger, store kv.Store) *Store {
	s := &Store{
		logger: logger,
		store:  store,
		ngos:   seed.NGOs(),
		needs:  seed.Needs(),
		now:    time.Now,
	}

	s.loadUserNeeds()

	return s
}

func (s *Store) loadUserNeeds() {
	raw, ok, err := s.store.Get(kv.KeyNeeds)
	if err != nil {
		s.logger.WithError(err).Error("failed to read persisted needs")
		return
	}
	if !ok {
		return
	}

	var persisted []*types.Need
	if err := json.Unmarshal([]byte(raw), &persisted); err != nil {
		s.logger.WithError(err).Error("failed to decode persisted needs, starting from seed data only")
		return
	}

	for _, need := range persisted {
		// Seed ids are rebuilt from the seed set, never from the store.
		if need.ID <= seed.MaxSeedNeedID {
			continue
		}
		s.needs = append(s.needs, need)
	}
}

// persistUserNeeds writes the user-posted subset of the catalog. Failures are
// logged and swallowed: the in-memory mutation already happened and stands
// for the rest of the session.
func (s *Store) persistUserNeeds() {
	user := make([]*types.Need, 0)
	for _, need := range s.needs {
		if need.ID > seed.MaxSeedNeedID {
			user = append(user, need)
		}
	}

	data, err := json.Marshal(user)
	if err != nil {
		s.logger.WithError(err).Error("failed to encode user needs")
		return
	}

	if err := s.store.Set(kv.KeyNeeds, string(data)); err != nil {
		s.logger.WithError(err).Error("failed to persist user needs")
	}
}

// ListNeeds returns the needs matching the filter: exact category and
// priority matches, case-insensitive substring match on title and
// description. A zero filter returns the full catalog.
func (s *Store) ListNeeds(filter types.NeedFilter) []*types.Need {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.Need, 0, len(s.needs))
	term := strings.ToLower(strings.TrimSpace(filter.Search))

	for _, need := range s.needs {
		if filter.Category != "" && need.Category != filter.Category {
			continue
		}
		if filter.Priority != "" && need.Priority != filter.Priority {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(need.Title), term) &&
			!strings.Contains(strings.ToLower(need.Description), term) {
			continue
		}

		out = append(out, copyNeed(need))
	}

	return out
}

// FeaturedNeeds returns the first three catalog entries.
func (s *Store) FeaturedNeeds() []*types.Need {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 3
	if len(s.needs) < n {
		n = len(s.needs)
	}

	out := make([]*types.Need, 0, n)
	for _, need := range s.needs[:n] {
		out = append(out, copyNeed(need))
	}

	return out
}

func (s *Store) Need(id int64) (*types.Need, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	need := s.findNeed(id)
	if need == nil {
		return nil, types.ErrNeedNotFound
	}

	return copyNeed(need), nil
}

func (s *Store) NGO(id int64) (*types.NGO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ngo := range s.ngos {
		if ngo.ID == id {
			out := *ngo
			return &out, nil
		}
	}

	return nil, types.ErrNGONotFound
}

func (s *Store) ListNGOs() []*types.NGO {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.NGO, 0, len(s.ngos))
	for _, ngo := range s.ngos {
		c := *ngo
		out = append(out, &c)
	}

	return out
}

// PostNeed validates the submitted fields, assigns id = current unix
// milliseconds, appends the need to the catalog, and persists the
// user-posted subset.
func (s *Store) PostNeed(input types.PostNeedInput) (*types.Need, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", types.ErrInvalidInput)
	}

	category, ok := types.ParseNeedCategory(input.Category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", types.ErrInvalidInput, input.Category)
	}

	priority, ok := types.ParseNeedPriority(input.Priority)
	if !ok {
		return nil, fmt.Errorf("%w: unknown priority %q", types.ErrInvalidInput, input.Priority)
	}

	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", types.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	need := &types.Need{
		ID:          now.UnixMilli(),
		NGOID:       input.NGOID,
		Title:       strings.TrimSpace(input.Title),
		Category:    category,
		Priority:    priority,
		Description: strings.TrimSpace(input.Description),
		Quantity:    input.Quantity,
		Fulfilled:   0,
		DatePosted:  now,
		NGOName:     strings.TrimSpace(input.NGOName),
	}

	if deadline, err := time.Parse("2006-01-02", input.Deadline); err == nil {
		need.Deadline = deadline
	}

	if ngo := s.findNGO(input.NGOID); ngo != nil {
		need.NGOName = ngo.Name
	}

	s.needs = append(s.needs, need)
	s.persistUserNeeds()

	s.logger.WithFields(logrus.Fields{
		"need_id": need.ID,
		"title":   need.Title,
	}).Info("need posted")

	return copyNeed(need), nil
}

// Donate applies up to amount items to the need and returns how many were
// actually contributed. A fully funded need is a terminal state: further
// donations apply zero items and are not an error, which also makes a
// double-submitted donation harmless.
func (s *Store) Donate(needID int64, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	need := s.findNeed(needID)
	if need == nil {
		s.logger.WithField("need_id", needID).Warn("donation to unknown need")
		return 0, types.ErrNeedNotFound
	}

	applied := amount
	if remaining := need.Quantity - need.Fulfilled; applied > remaining {
		applied = remaining
	}

	if applied <= 0 {
		return 0, nil
	}

	need.Fulfilled += applied
	s.persistUserNeeds()

	s.logger.WithFields(logrus.Fields{
		"need_id":   needID,
		"applied":   applied,
		"fulfilled": need.Fulfilled,
		"quantity":  need.Quantity,
	}).Info("donation applied")

	return applied, nil
}

func (s *Store) findNeed(id int64) *types.Need {
	for _, need := range s.needs {
		if need.ID == id {
			return need
		}
	}
	return nil
}

func (s *Store) findNGO(id int64) *types.NGO {
	for _, ngo := range s.ngos {
		if ngo.ID == id {
			return ngo
		}
	}
	return nil
}

// Snapshot returns a copy of the full catalog, used by the state dump
// command.
func (s *Store) Snapshot() ([]*types.NGO, []*types.Need) {
	return s.ListNGOs(), s.ListNeeds(types.NeedFilter{})
}

func copyNeed(need *types.Need) *types.Need {
	out := *need
	return &out
}
