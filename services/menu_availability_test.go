package services

import (
	"testing"
	"time"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestItemVisibleAdminBypass(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	hidden := entity.MenuItem{Name: "Secret Special", Hidden: true}
	expired := entity.MenuItem{
		Name:        "Summer Special",
		AvailableTo: strPtr("2025-01-01T00:00:00Z"),
	}
	future := entity.MenuItem{
		Name:          "Christmas Menu",
		AvailableFrom: strPtr("2025-12-01T00:00:00Z"),
	}

	for _, item := range []entity.MenuItem{hidden, expired, future} {
		assert.True(t, ItemVisible(&item, true, now), "admin must see %q", item.Name)
	}
}

func TestItemVisibleHiddenWins(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Window is wide open; Hidden must still win.
	item := entity.MenuItem{
		Name:          "Off Menu",
		Hidden:        true,
		AvailableFrom: strPtr("2025-01-01T00:00:00Z"),
		AvailableTo:   strPtr("2025-12-31T00:00:00Z"),
	}
	assert.False(t, ItemVisible(&item, false, now))
}

func TestItemVisibleWindowBoundariesInclusive(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	item := entity.MenuItem{
		Name:          "June Special",
		AvailableFrom: strPtr(from.Format(time.RFC3339)),
		AvailableTo:   strPtr(to.Format(time.RFC3339)),
	}

	assert.False(t, ItemVisible(&item, false, from.Add(-time.Second)), "before window")
	assert.True(t, ItemVisible(&item, false, from), "lower bound is inclusive")
	assert.True(t, ItemVisible(&item, false, from.AddDate(0, 0, 14)), "inside window")
	assert.True(t, ItemVisible(&item, false, to), "upper bound is inclusive")
	assert.False(t, ItemVisible(&item, false, to.Add(time.Second)), "after window")
}

func TestItemVisibleUnscoped(t *testing.T) {
	item := entity.MenuItem{Name: "Guinness Stew"}

	for _, now := range []time.Time{
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2099, 12, 31, 23, 59, 59, 0, time.UTC),
	} {
		assert.True(t, ItemVisible(&item, false, now))
		assert.True(t, ItemVisible(&item, true, now))
	}
}

func TestItemVisibleMalformedTimestampMeansNoConstraint(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	item := entity.MenuItem{
		Name:          "Imported Row",
		AvailableFrom: strPtr("next tuesday"),
		AvailableTo:   strPtr("???"),
	}
	assert.True(t, ItemVisible(&item, false, now))

	// A bad bound never overrides the hidden flag either way.
	item.Hidden = true
	assert.False(t, ItemVisible(&item, false, now))
}

func TestItemVisibleAlternateLayouts(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	dateOnly := entity.MenuItem{
		Name:          "Lunch Deal",
		AvailableFrom: strPtr("2025-06-01"),
		AvailableTo:   strPtr("2025-06-30"),
	}
	assert.True(t, ItemVisible(&dateOnly, false, now))

	noZone := entity.MenuItem{
		Name:          "Early Bird",
		AvailableFrom: strPtr("2025-06-01T09:00:00"),
	}
	assert.True(t, ItemVisible(&noZone, false, now))
}

func TestItemVisibleTimeScopedSpecial(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	item := entity.MenuItem{
		Name:          "Chef Special",
		AvailableFrom: strPtr(today.Format(time.RFC3339)),
		AvailableTo:   strPtr(today.AddDate(0, 0, 7).Format(time.RFC3339)),
	}

	late := today.AddDate(0, 0, 10)
	assert.False(t, ItemVisible(&item, false, late))
	assert.True(t, ItemVisible(&item, true, late))
}

func TestVisibleItemsPreservesOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	items := []entity.MenuItem{
		{Name: "A"},
		{Name: "B", Hidden: true},
		{Name: "C"},
		{Name: "D", AvailableTo: strPtr("2020-01-01")},
		{Name: "E"},
	}

	pub := VisibleItems(items, false, now)
	names := make([]string, 0, len(pub))
	for _, it := range pub {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"A", "C", "E"}, names)

	admin := VisibleItems(items, true, now)
	assert.Len(t, admin, 5)
}
