// services/menu_service.go
package services

import (
	"time"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/repository"
)

type MenuService struct {
	Categories *repository.MenuCategoryRepository
}

func NewMenuService(cats *repository.MenuCategoryRepository) *MenuService {
	return &MenuService{Categories: cats}
}

// ListMenu returns one menu page's categories with the items the viewer is
// allowed to see. Categories are kept even when all their items filter out,
// so the admin panel can show empty ones; the frontend skips them for the
// public page.
func (s *MenuService) ListMenu(menuType string, isAdmin bool, now time.Time) ([]entity.MenuCategory, error) {
	cats, err := s.Categories.FindByMenuType(menuType)
	if err != nil {
		return nil, err
	}
	for i := range cats {
		cats[i].Items = VisibleItems(cats[i].Items, isAdmin, now)
	}
	return cats, nil
}

// Search ranks the query against the whole menu. Public viewers only search
// what they could see on the page; admins search the unfiltered set so hidden
// and out-of-window items stay findable from the panel.
func (s *MenuService) Search(query string, isAdmin bool, now time.Time) ([]SearchResult, error) {
	cats, err := s.Categories.FindAll()
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		for i := range cats {
			cats[i].Items = VisibleItems(cats[i].Items, false, now)
		}
	}
	return SearchMenu(query, FlattenCandidates(cats)), nil
}
