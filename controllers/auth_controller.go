package controllers

import (
	"net/http"

	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/entity"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/pkg/resp"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/services"
	"github.com/LucasHenderson/lucashenderson-e-joaopoliveira-topicos3/utils"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
type UpdateMeRequest struct {
	FullName *string `json:"fullName"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

func userPayload(u *entity.User) gin.H {
	return gin.H{
		"id": u.ID, "email": u.Email, "fullName": u.FullName,
		"address": u.Address, "phone": u.Phone, "role": u.Role,
	}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Service.Register(req.Email, req.Password, req.FullName, req.Address, req.Phone)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, userPayload(user))
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
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user":  userPayload(user),
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, userPayload(user))
}

// PATCH /auth/me
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	user, err := a.Service.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, userPayload(user))
}
