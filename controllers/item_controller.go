package controllers

import (
	"strconv"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/configs"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/pkg/resp"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/repository"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/utils"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	Repo *repository.MenuItemRepository
	Cfg  *configs.Config
}

func NewItemController(repo *repository.MenuItemRepository, cfg *configs.Config) *ItemController {
	return &ItemController{Repo: repo, Cfg: cfg}
}

type ItemRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         string   `json:"price"`
	Allergens     []string `json:"allergens"`
	Tags          []string `json:"tags"`
	Hidden        bool     `json:"hidden"`
	AvailableFrom *string  `json:"availableFrom"`
	AvailableTo   *string  `json:"availableTo"`
	DisplayOrder  int      `json:"displayOrder"`
	CategoryID    uint     `json:"categoryId" binding:"required"`
}

// GET /admin/items/:id
func (ctl *ItemController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctl.Repo.FindByID(uint(id))
	if err != nil {
		resp.NotFound(c, "item not found")
		return
	}
	resp.OK(c, item)
}

// POST /admin/items
func (ctl *ItemController) Create(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item := entity.MenuItem{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Allergens:     entity.StringList(req.Allergens),
		Tags:          entity.StringList(req.Tags),
		Hidden:        req.Hidden,
		AvailableFrom: req.AvailableFrom,
		AvailableTo:   req.AvailableTo,
		DisplayOrder:  req.DisplayOrder,
		CategoryID:    req.CategoryID,
	}
	if err := ctl.Repo.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// ItemUpdateRequest is a partial patch: only fields present in the JSON
// body are written. Sending an empty string for a window bound clears it.
type ItemUpdateRequest struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Price         *string   `json:"price"`
	Allergens     *[]string `json:"allergens"`
	Tags          *[]string `json:"tags"`
	Hidden        *bool     `json:"hidden"`
	AvailableFrom *string   `json:"availableFrom"`
	AvailableTo   *string   `json:"availableTo"`
	DisplayOrder  *int      `json:"displayOrder"`
	CategoryID    *uint     `json:"categoryId"`
}

// PATCH /admin/items/:id
func (ctl *ItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Allergens != nil {
		updates["allergens"] = entity.StringList(*req.Allergens)
	}
	if req.Tags != nil {
		updates["tags"] = entity.StringList(*req.Tags)
	}
	if req.Hidden != nil {
		updates["hidden"] = *req.Hidden
	}
	if req.AvailableFrom != nil {
		updates["available_from"] = windowBound(*req.AvailableFrom)
	}
	if req.AvailableTo != nil {
		updates["available_to"] = windowBound(*req.AvailableTo)
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if len(updates) == 0 {
		resp.OK(c, gin.H{"message": "nothing to update"})
		return
	}

	if err := ctl.Repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item updated"})
}

// windowBound maps an empty patch value to NULL so a bound can be removed.
func windowBound(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// DELETE /admin/items/:id
func (ctl *ItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "item deleted"})
}

// PATCH /admin/categories/:id/items/reorder
func (ctl *ItemController) Reorder(c *gin.Context) {
	catID, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Repo.Reorder(uint(catID), req.IDs); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "items reordered"})
}

// POST /admin/items/:id/images
func (ctl *ItemController) UploadImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Image        string `json:"image" binding:"required"` // base64, data-URI allowed
		DisplayOrder int    `json:"displayOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := ctl.Repo.FindByID(uint(id)); err != nil {
		resp.NotFound(c, "item not found")
		return
	}

	filename, err := utils.SaveBase64Image(req.Image, ctl.Cfg.UploadDir)
	if err != nil {
		resp.BadRequest(c, "invalid image payload")
		return
	}

	img := entity.MenuItemImage{
		Path:         filename,
		DisplayOrder: req.DisplayOrder,
		MenuItemID:   uint(id),
	}
	if err := ctl.Repo.AddImage(&img); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": img.ID, "path": img.Path, "url": utils.ResolveImageURL(img.Path)})
}

// DELETE /admin/items/images/:imageId
func (ctl *ItemController) DeleteImage(c *gin.Context) {
	imgID, _ := strconv.Atoi(c.Param("imageId"))

	if _, err := ctl.Repo.FindImage(uint(imgID)); err != nil {
		resp.NotFound(c, "image not found")
		return
	}
	if err := ctl.Repo.DeleteImage(uint(imgID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "image deleted"})
}
