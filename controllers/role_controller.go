package controllers

import (
	"net/http"

	"hotelease-backend/models"
	"hotelease-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Roles are a fixed, seeded set; the API only lists them.
type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

func (ctrl *RoleController) GetRoles(c *gin.Context) {
	var roles []models.Role
	if err := ctrl.DB.Order("name ASC").Find(&roles).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve roles")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roles)
}
