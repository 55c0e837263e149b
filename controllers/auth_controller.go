package controllers

import (
	"errors"
	"net/http"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Username string `json:"username"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{Service: service}
}

// POST /auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Signup(req.Email, req.Password, req.Name, req.Username)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			resp.BadRequest(c, "このメールアドレスは既に登録されています")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "token": token, "user": user})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.Unauthorized(c, "アカウントが見つかりません")
			return
		}
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "メールアドレスまたはパスワードが正しくありません")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": user})
}

// GET /auth/me (ต้อง login)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /auth/logout — JWT เป็น stateless ฝั่ง server ไม่มีอะไรต้องเคลียร์
// client ทิ้ง token เองเทียบเท่าการลบ session pointer
func (a *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}
