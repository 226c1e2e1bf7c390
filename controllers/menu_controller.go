package controllers

import (
	"time"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/pkg/resp"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/services"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/utils"

	"github.com/gin-gonic/gin"
)

// MenuController serves the public menu pages and search. The same routes
// serve the admin panel: a valid admin token (picked up by the optional auth
// middleware) switches off availability filtering.
type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Service: svc}
}

// GET /menu?type=aLaCarte
func (ctl *MenuController) List(c *gin.Context) {
	menuType := c.DefaultQuery("type", entity.MenuTypeALaCarte)
	if !entity.ValidMenuType(menuType) {
		resp.BadRequest(c, "unknown menu type")
		return
	}

	cats, err := ctl.Service.ListMenu(menuType, utils.IsAdmin(c), time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// GET /menu/search?q=chowder
func (ctl *MenuController) Search(c *gin.Context) {
	query := c.Query("q")

	results, err := ctl.Service.Search(query, utils.IsAdmin(c), time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	// results == nil for a blank query; the frontend shows a different
	// empty state than for zero matches, so send the query back too.
	if results == nil {
		results = []services.SearchResult{}
	}
	resp.OK(c, gin.H{"query": query, "results": results})
}

// GET /allergens
func (ctl *MenuController) Allergens(c *gin.Context) {
	resp.OK(c, gin.H{
		"names": entity.AllergenNames,
		"icons": entity.AllergenIcons,
	})
}
