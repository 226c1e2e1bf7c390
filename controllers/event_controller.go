package controllers

import (
	"strconv"
	"time"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/pkg/resp"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/repository"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/utils"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	Repo *repository.EventRepository
}

func NewEventController(repo *repository.EventRepository) *EventController {
	return &EventController{Repo: repo}
}

// GET /events
// Public viewers get upcoming events; admins get everything.
func (ctl *EventController) List(c *gin.Context) {
	if utils.IsAdmin(c) {
		events, err := ctl.Repo.FindAll()
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, events)
		return
	}

	events, err := ctl.Repo.FindUpcoming(time.Now(), false)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, events)
}

type EventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	StartsAt    time.Time  `json:"startsAt" binding:"required"`
	EndsAt      *time.Time `json:"endsAt"`
	ImagePath   string     `json:"imagePath"`
	Hidden      bool       `json:"hidden"`
}

// POST /admin/events
func (ctl *EventController) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ev := entity.Event{
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		ImagePath:   req.ImagePath,
		Hidden:      req.Hidden,
	}
	if err := ctl.Repo.Create(&ev); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, ev)
}

// EventUpdateRequest is a partial patch: only fields present in the JSON
// body are written. EndsAt set to null in the body is indistinguishable
// from absent, so clearing an end date goes through a full re-create.
type EventUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	ImagePath   *string    `json:"imagePath"`
	Hidden      *bool      `json:"hidden"`
}

// PATCH /admin/events/:id
func (ctl *EventController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req EventUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}
	if req.ImagePath != nil {
		updates["image_path"] = *req.ImagePath
	}
	if req.Hidden != nil {
		updates["hidden"] = *req.Hidden
	}
	if len(updates) == 0 {
		resp.OK(c, gin.H{"message": "nothing to update"})
		return
	}

	if err := ctl.Repo.Update(uint(id), updates); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "event updated"})
}

// DELETE /admin/events/:id
func (ctl *EventController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctl.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "event deleted"})
}
