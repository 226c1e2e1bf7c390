package controllers

import (
	"net/http"
	"strings"

	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/configs"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/pkg/resp"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/repository"
	"github.com/hugoviegas/mcgees-irish-pub-online-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Users *repository.UserRepository
	Cfg   *configs.Config
}

func NewAuthController(users *repository.UserRepository, cfg *configs.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Users.FindByEmail(strings.ToLower(req.Email))
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role,
		},
	})
}

// GET /auth/me (requires token)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, gin.H{
		"id": user.ID, "email": user.Email, "name": user.Name, "role": user.Role,
	})
}
