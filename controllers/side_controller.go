package controllers

import (
	"strconv"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/pkg/resp"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/repository"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/utils"

	"github.com/gin-gonic/gin"
)

type SideController struct {
	Repo *repository.SideRepository
}

func NewSideController(repo *repository.SideRepository) *SideController {
	return &SideController{Repo: repo}
}

// GET /sides
// Admins also get hidden rows.
func (ctl *SideController) List(c *gin.Context) {
	sides, err := ctl.Repo.FindAll(utils.IsAdmin(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sides)
}

type SideRequest struct {
	Name         string `json:"name" binding:"required"`
	Price        string `json:"price"`
	Hidden       bool   `json:"hidden"`
	DisplayOrder int    `json:"displayOrder"`
}

// POST /admin/sides
func (ctl *SideController) Create(c *gin.Context) {
	var req SideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	side := entity.Side{
		Name:         req.Name,
		Price:        req.Price,
		Hidden:       req.Hidden,
		DisplayOrder: req.DisplayOrder,
	}
	if err := ctl.Repo.Create(&side); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, side)
}

// SideUpdateRequest is a partial patch: only fields present in the JSON
// body are written.
type SideUpdateRequest struct {
	Name         *string `json:"name"`
	Price        *string `json:"price"`
	Hidden       *bool   `json:"hidden"`
	DisplayOrder *int    `json:"displayOrder"`
}

// PATCH /admin/sides/:id
func (ctl *SideController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req SideUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Hidden != nil {
		updates["hidden"] = *req.Hidden
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
	resp.OK(c, gin.H{"message": "side updated"})
}

// DELETE /admin/sides/:id
func (ctl *SideController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "side deleted"})
}
