package controllers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/configs"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newItemTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.MenuCategory{}, &entity.MenuItem{}, &entity.MenuItemImage{},
	))

	ctl := NewItemController(repository.NewMenuItemRepository(db), &configs.Config{})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/admin/items/:id", ctl.Update)
	return r, db
}

func seedPieItem(t *testing.T, db *gorm.DB) entity.MenuItem {
	t.Helper()

	cat := entity.MenuCategory{Name: "Mains", MenuType: entity.MenuTypeALaCarte}
	require.NoError(t, db.Create(&cat).Error)

	from := "2025-06-01T00:00:00Z"
	item := entity.MenuItem{
		Name:          "Beef and Guinness Pie",
		Description:   "with mash and gravy",
		Price:         "€16.50",
		Allergens:     entity.StringList{"1", "6"},
		Hidden:        true,
		AvailableFrom: &from,
		DisplayOrder:  3,
		CategoryID:    cat.ID,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func patchItem(t *testing.T, r *gin.Engine, id uint, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch,
		"/admin/items/"+strconv.Itoa(int(id)),
		strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestItemUpdatePartialPatchKeepsUnsetFields(t *testing.T) {
	r, db := newItemTestRouter(t)
	item := seedPieItem(t, db)

	w := patchItem(t, r, item.ID, `{"price":"€17.50"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.MenuItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, "€17.50", got.Price)
	assert.Equal(t, "Beef and Guinness Pie", got.Name)
	assert.True(t, got.Hidden, "hidden must survive a patch that omits it")
	assert.Equal(t, 3, got.DisplayOrder)
	assert.Equal(t, entity.StringList{"1", "6"}, got.Allergens)
	require.NotNil(t, got.AvailableFrom)
}

func TestItemUpdateHiddenAlone(t *testing.T) {
	r, db := newItemTestRouter(t)
	item := seedPieItem(t, db)

	w := patchItem(t, r, item.ID, `{"hidden":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.MenuItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.False(t, got.Hidden)
	assert.Equal(t, "€16.50", got.Price)
}

func TestItemUpdateClearsWindowBoundWithEmptyString(t *testing.T) {
	r, db := newItemTestRouter(t)
	item := seedPieItem(t, db)

	w := patchItem(t, r, item.ID, `{"availableFrom":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.MenuItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Nil(t, got.AvailableFrom)
}

func TestItemUpdateEmptyBodyIsNoop(t *testing.T) {
	r, db := newItemTestRouter(t)
	item := seedPieItem(t, db)

	w := patchItem(t, r, item.ID, `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got entity.MenuItem
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Equal(t, "€16.50", got.Price)
	assert.True(t, got.Hidden)
}
