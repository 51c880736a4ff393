package controllers

import (
	"net/http"

	"hotelease-backend/services"
	"hotelease-backend/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	CompanyName string            `json:"companyName" binding:"required"`
	Address     map[string]string `json:"address"`
	Name        string            `json:"name" binding:"required"`
	Email       string            `json:"email" binding:"required"`
	Password    string            `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

// POST /api/v1/auth/register — new company plus its first admin user.
func (ctrl *AuthController) Register(c *gin.Context) {
	var payload RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	result, err := ctrl.AuthSvc.Register(services.RegisterInput{
		CompanyName: payload.CompanyName,
		Address:     payload.Address,
		Name:        payload.Name,
		Email:       payload.Email,
		Password:    payload.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := ctrl.AuthSvc.Login(payload.Email, payload.Password)
	if err != nil {
		// Credential and state failures both read as 401 to the client.
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}
