package controllers

import (
	"net/http"

	"hotelease-backend/middleware"
	"hotelease-backend/services"
	"hotelease-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateCompanyRequest struct {
	Name    string            `json:"name"`
	Address map[string]string `json:"address"`
}

type CompanyController struct {
	CompanySvc *services.CompanyService
}

func NewCompanyController(svc *services.CompanyService) *CompanyController {
	return &CompanyController{CompanySvc: svc}
}

// GET /api/v1/companies/me
func (ctrl *CompanyController) GetCompany(c *gin.Context) {
	company, err := ctrl.CompanySvc.Get(middleware.CompanyID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, company)
}

// PUT /api/v1/companies/me
func (ctrl *CompanyController) UpdateCompany(c *gin.Context) {
	var payload UpdateCompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	company, err := ctrl.CompanySvc.Update(middleware.CompanyID(c), payload.Name, payload.Address)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, company)
}
