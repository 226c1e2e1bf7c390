// services/menu_availability.go
package services

import (
	"time"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
)

// Accepted layouts for availability window timestamps. The admin panel writes
// RFC 3339, but rows imported from the old site may carry the shorter forms.
var windowLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseWindowTime parses an optional window bound. A nil, blank or
// unparseable value reports false, meaning the bound puts no constraint on
// visibility. A bad timestamp must never hide or reveal an item on its own;
// only the Hidden flag does that.
func parseWindowTime(s *string) (time.Time, bool) {
	if s == nil || *s == "" {
		return time.Time{}, false
	}
	for _, layout := range windowLayouts {
		if t, err := time.Parse(layout, *s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ItemVisible decides whether one menu item renders for the given viewer at
// the given instant. Admins always see everything so they can manage hidden
// and out-of-window items. For the public, Hidden wins over the window, and
// both window bounds are inclusive.
func ItemVisible(item *entity.MenuItem, isAdmin bool, now time.Time) bool {
	if isAdmin {
		return true
	}
	if item.Hidden {
		return false
	}
	if from, ok := parseWindowTime(item.AvailableFrom); ok && now.Before(from) {
		return false
	}
	if to, ok := parseWindowTime(item.AvailableTo); ok && now.After(to) {
		return false
	}
	return true
}

// VisibleItems filters a category's items for the viewer, preserving order.
// now changes continuously, so callers re-evaluate on every read rather than
// caching the result.
func VisibleItems(items []entity.MenuItem, isAdmin bool, now time.Time) []entity.MenuItem {
	out := make([]entity.MenuItem, 0, len(items))
	for i := range items {
		if ItemVisible(&items[i], isAdmin, now) {
			out = append(out, items[i])
		}
	}
	return out
}
