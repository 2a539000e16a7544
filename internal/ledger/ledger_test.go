package ledger

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopebridge/internal/kv"
	"hopebridge/pkg/types"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testStore(t *testing.T) (*Store, kv.Store) {
	t.Helper()

	mem := kv.NewMemStore()
	return New(testLogger(), mem), mem
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, nil }
func (failingStore) Set(string, string) error         { return errors.New("store unavailable") }
func (failingStore) Remove(string) error              { return errors.New("store unavailable") }

func TestLoadSeedCatalog(t *testing.T) {
	s, _ := testStore(t)

	needs := s.ListNeeds(types.NeedFilter{})
	require.Len(t, needs, 4)

	ngos := s.ListNGOs()
	require.Len(t, ngos, 3)

	need, err := s.Need(1)
	require.NoError(t, err)
	assert.Equal(t, "Winter Clothing for 50 Children", need.Title)
	assert.Equal(t, 50, need.Quantity)
	assert.Equal(t, 12, need.Fulfilled)
}

func TestListNeedsFilters(t *testing.T) {
	s, _ := testStore(t)

	byCategory := s.ListNeeds(types.NeedFilter{Category: types.CategoryMedical})
	require.Len(t, byCategory, 1)
	assert.EqualValues(t, 3, byCategory[0].ID)

	byPriority := s.ListNeeds(types.NeedFilter{Priority: types.PriorityUrgent})
	require.Len(t, byPriority, 2)

	bySearch := s.ListNeeds(types.NeedFilter{Search: "MEAL packets"})
	require.Len(t, bySearch, 1)
	assert.EqualValues(t, 4, bySearch[0].ID)

	combined := s.ListNeeds(types.NeedFilter{
		Category: types.CategoryClothing,
		Priority: types.PriorityUrgent,
		Search:   "winter",
	})
	require.Len(t, combined, 1)
	assert.EqualValues(t, 1, combined[0].ID)

	none := s.ListNeeds(types.NeedFilter{Search: "no such need"})
	assert.Empty(t, none)
}

func TestFeaturedNeeds(t *testing.T) {
	s, _ := testStore(t)

	featured := s.FeaturedNeeds()
	require.Len(t, featured, 3)
	assert.EqualValues(t, 1, featured[0].ID)
	assert.EqualValues(t, 3, featured[2].ID)
}

func TestDonate(t *testing.T) {
	s, _ := testStore(t)

	applied, err := s.Donate(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, applied)

	need, err := s.Need(1)
	require.NoError(t, err)
	assert.Equal(t, 17, need.Fulfilled)
}

func TestDonateClampsToRemaining(t *testing.T) {
	s, _ := testStore(t)

	// Need 3 starts at 5/20; leave 3 remaining, then over-donate twice.
	_, err := s.Donate(3, 12)
	require.NoError(t, err)

	applied, err := s.Donate(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, applied)

	applied, err = s.Donate(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	need, err := s.Need(3)
	require.NoError(t, err)
	assert.Equal(t, need.Quantity, need.Fulfilled)
}

func TestDonateFullyFundedIsTerminal(t *testing.T) {
	s, _ := testStore(t)

	// Need 4 starts at 150/200.
	for i := 0; i < 20; i++ {
		_, err := s.Donate(4, 5)
		require.NoError(t, err)
	}

	need, err := s.Need(4)
	require.NoError(t, err)
	assert.Equal(t, 200, need.Fulfilled)

	applied, err := s.Donate(4, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, applied)

	need, err = s.Need(4)
	require.NoError(t, err)
	assert.Equal(t, 200, need.Fulfilled)
}

func TestDonateUnknownNeed(t *testing.T) {
	s, _ := testStore(t)

	_, err := s.Donate(9999, 5)
	assert.ErrorIs(t, err, types.ErrNeedNotFound)
}

func TestDonateInvariantHolds(t *testing.T) {
	s, _ := testStore(t)

	amounts := []int{1, 7, 100, 3, 50}
	for _, amount := range amounts {
		for id := int64(1); id <= 4; id++ {
			_, err := s.Donate(id, amount)
			require.NoError(t, err)
		}
	}

	for _, need := range s.ListNeeds(types.NeedFilter{}) {
		assert.GreaterOrEqual(t, need.Fulfilled, 0)
		assert.LessOrEqual(t, need.Fulfilled, need.Quantity)
	}
}

func TestDonatePersistenceFailureDoesNotRollBack(t *testing.T) {
	s := New(testLogger(), failingStore{})

	applied, err := s.Donate(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, applied)

	need, err := s.Need(1)
	require.NoError(t, err)
	assert.Equal(t, 17, need.Fulfilled)
}

func TestPostNeed(t *testing.T) {
	s, _ := testStore(t)
	s.now = func() time.Time { return time.UnixMilli(1756700000000).UTC() }

	need, err := s.PostNeed(types.PostNeedInput{
		NGOID:       2,
		Title:       "Blankets for Shelter",
		Category:    "Clothing",
		Priority:    "High",
		Description: "Warm blankets for the night shelter",
		Quantity:    30,
		Deadline:    "2025-09-15",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1756700000000, need.ID)
	assert.Equal(t, 0, need.Fulfilled)
	assert.Equal(t, types.CategoryClothing, need.Category)
	assert.Equal(t, types.PriorityHigh, need.Priority)
	// NGO name resolved from the catalog, not the input.
	assert.Equal(t, "Sunrise Educational Trust", need.NGOName)
	assert.Equal(t, 15, need.Deadline.Day())

	assert.Len(t, s.ListNeeds(types.NeedFilter{}), 5)
}

func TestPostNeedValidation(t *testing.T) {
	s, _ := testStore(t)

	cases := []struct {
		name  string
		input types.PostNeedInput
	}{
		{"missing title", types.PostNeedInput{Category: "Food", Priority: "High", Quantity: 1}},
		{"unknown category", types.PostNeedInput{Title: "x", Category: "Toys", Priority: "High", Quantity: 1}},
		{"unknown priority", types.PostNeedInput{Title: "x", Category: "Food", Priority: "ASAP", Quantity: 1}},
		{"zero quantity", types.PostNeedInput{Title: "x", Category: "Food", Priority: "High", Quantity: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.PostNeed(tc.input)
			assert.ErrorIs(t, err, types.ErrInvalidInput)
		})
	}

	assert.Len(t, s.ListNeeds(types.NeedFilter{}), 4)
}

func TestPostNeedRoundTrip(t *testing.T) {
	mem := kv.NewMemStore()

	s := New(testLogger(), mem)
	posted, err := s.PostNeed(types.PostNeedInput{
		Title:    "Rice Bags",
		Category: "Food",
		Priority: "Medium",
		Quantity: 40,
		NGOName:  "Unlisted Trust",
	})
	require.NoError(t, err)

	// A reload replays seed data plus the persisted user needs.
	reloaded := New(testLogger(), mem)

	need, err := reloaded.Need(posted.ID)
	require.NoError(t, err)
	assert.Equal(t, posted.Title, need.Title)
	assert.Equal(t, 0, need.Fulfilled)
	assert.Equal(t, 40, need.Quantity)
	assert.Equal(t, "Unlisted Trust", need.NGOName)
}

func TestSeedDonationsDoNotSurviveReload(t *testing.T) {
	mem := kv.NewMemStore()

	s := New(testLogger(), mem)
	_, err := s.Donate(1, 5)
	require.NoError(t, err)

	// Seed needs are rebuilt from the seed set, so their progress resets.
	reloaded := New(testLogger(), mem)

	need, err := reloaded.Need(1)
	require.NoError(t, err)
	assert.Equal(t, 12, need.Fulfilled)
}

func TestUserNeedDonationsSurviveReload(t *testing.T) {
	mem := kv.NewMemStore()

	s := New(testLogger(), mem)
	posted, err := s.PostNeed(types.PostNeedInput{
		Title:    "Notebooks",
		Category: "Education",
		Priority: "Low",
		Quantity: 10,
	})
	require.NoError(t, err)

	applied, err := s.Donate(posted.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, applied)

	reloaded := New(testLogger(), mem)

	need, err := reloaded.Need(posted.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, need.Fulfilled)
}

func TestLoadIgnoresCorruptBlob(t *testing.T) {
	mem := kv.NewMemStore()
	require.NoError(t, mem.Set(kv.KeyNeeds, "{not json"))

	s := New(testLogger(), mem)
	assert.Len(t, s.ListNeeds(types.NeedFilter{}), 4)
}

func TestNGOLookup(t *testing.T) {
	s, _ := testStore(t)

	ngo, err := s.NGO(3)
	require.NoError(t, err)
	assert.Equal(t, "Care Foundation", ngo.Name)

	_, err = s.NGO(42)
	assert.ErrorIs(t, err, types.ErrNGONotFound)
}

func TestProgressIsDerived(t *testing.T) {
	s, _ := testStore(t)

	need, err := s.Need(2)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, need.Progress(), 0.001)

	_, err = s.Donate(2, 10)
	require.NoError(t, err)

	need, err = s.Need(2)
	require.NoError(t, err)
	assert.InDelta(t, 35.0, need.Progress(), 0.001)
}
