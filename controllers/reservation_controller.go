package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/entity"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/pkg/resp"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/services"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Service: svc}
}

type ReservationRequest struct {
	Name        string    `json:"name" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Phone       string    `json:"phone"`
	PartySize   int       `json:"partySize" binding:"required"`
	ReservedFor time.Time `json:"reservedFor" binding:"required"`
	Notes       string    `json:"notes"`
}

// POST /reservations (public)
func (ctl *ReservationController) Create(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res := entity.Reservation{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		PartySize:   req.PartySize,
		ReservedFor: req.ReservedFor,
		Notes:       req.Notes,
	}
	if err := ctl.Service.Create(&res); err != nil {
		if errors.Is(err, services.ErrInvalidPartySize) {
			resp.BadRequest(c, "party size must be at least 1")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, res)
}

// GET /admin/reservations?status=pending
func (ctl *ReservationController) List(c *gin.Context) {
	list, err := ctl.Service.List(c.Query("status"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, list)
}

// PATCH /admin/reservations/:id/confirm
func (ctl *ReservationController) Confirm(c *gin.Context) {
	ctl.updateStatus(c, ctl.Service.Confirm)
}

// PATCH /admin/reservations/:id/decline
func (ctl *ReservationController) Decline(c *gin.Context) {
	ctl.updateStatus(c, ctl.Service.Decline)
}

// PATCH /admin/reservations/:id/cancel
func (ctl *ReservationController) Cancel(c *gin.Context) {
	ctl.updateStatus(c, ctl.Service.Cancel)
}

func (ctl *ReservationController) updateStatus(c *gin.Context, fn func(uint) error) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := fn(uint(id)); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.BadRequest(c, "invalid status transition")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "reservation updated"})
}
