package services

import (
	"testing"
	"time"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestMenuService(t *testing.T) *MenuService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.MenuCategory{}, &entity.MenuItem{}, &entity.MenuItemImage{},
	))

	cat := entity.MenuCategory{
		Name:     "Mains",
		MenuType: entity.MenuTypeALaCarte,
		Items: []entity.MenuItem{
			{Name: "Guinness Stew", DisplayOrder: 0},
			{Name: "Guinness Pie", Hidden: true, DisplayOrder: 1},
			{
				Name:         "Guinness Winter Roast",
				AvailableTo:  strPtr("2025-01-31T00:00:00Z"),
				DisplayOrder: 2,
			},
		},
	}
	require.NoError(t, db.Create(&cat).Error)

	return NewMenuService(repository.NewMenuCategoryRepository(db))
}

func resultNames(results []SearchResult) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Item.Name)
	}
	return names
}

func TestMenuServiceSearchFiltersForPublic(t *testing.T) {
	svc := newTestMenuService(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Public search only sees what the menu page would render: the hidden
	// item and the expired special stay out.
	pub, err := svc.Search("guinness", false, now)
	require.NoError(t, err)
	require.Equal(t, []string{"Guinness Stew"}, resultNames(pub))

	// Admin search runs over the unfiltered set so hidden and out-of-window
	// items stay findable from the panel.
	admin, err := svc.Search("guinness", true, now)
	require.NoError(t, err)
	require.Equal(t,
		[]string{"Guinness Stew", "Guinness Pie", "Guinness Winter Roast"},
		resultNames(admin))
}

func TestMenuServiceListMenuFiltersForPublic(t *testing.T) {
	svc := newTestMenuService(t)
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	pub, err := svc.ListMenu(entity.MenuTypeALaCarte, false, now)
	require.NoError(t, err)
	require.Len(t, pub, 1)
	require.Equal(t, []string{"Guinness Stew"}, itemNames(pub[0].Items))

	admin, err := svc.ListMenu(entity.MenuTypeALaCarte, true, now)
	require.NoError(t, err)
	require.Len(t, admin, 1)
	require.Len(t, admin[0].Items, 3)
}

func itemNames(items []entity.MenuItem) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
