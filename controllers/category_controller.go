package controllers

import (
	"strconv"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/pkg/resp"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/repository"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	Repo *repository.MenuCategoryRepository
}

func NewCategoryController(repo *repository.MenuCategoryRepository) *CategoryController {
	return &CategoryController{Repo: repo}
}

type CategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	MenuType     string `json:"menuType" binding:"required"`
	DisplayOrder int    `json:"displayOrder"`
}

// POST /admin/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !entity.ValidMenuType(req.MenuType) {
		resp.BadRequest(c, "unknown menu type")
		return
	}

	cat := entity.MenuCategory{
		Name:         req.Name,
		MenuType:     req.MenuType,
		DisplayOrder: req.DisplayOrder,
	}
	if err := ctl.Repo.Create(&cat); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// CategoryUpdateRequest is a partial patch: only fields present in the
// JSON body are written.
type CategoryUpdateRequest struct {
	Name         *string `json:"name"`
	MenuType     *string `json:"menuType"`
	DisplayOrder *int    `json:"displayOrder"`
}

// PATCH /admin/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.MenuType != nil {
		if !entity.ValidMenuType(*req.MenuType) {
			resp.BadRequest(c, "unknown menu type")
			return
		}
		updates["menu_type"] = *req.MenuType
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if len(updates) == 0 {
		resp.OK(c, gin.H{"message": "nothing to update"})
		return
	}

	if err := ctl.Repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category updated"})
}

// DELETE /admin/categories/:id
func (ctl *CategoryController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

// PATCH /admin/categories/reorder
func (ctl *CategoryController) Reorder(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Repo.Reorder(req.IDs); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "categories reordered"})
}
