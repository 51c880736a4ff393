package controllers

import (
	"net/http"
	"strconv"

	"hotelease-backend/middleware"
	"hotelease-backend/services"
	"hotelease-backend/utils"

	"github.com/gin-gonic/gin"
)

type AmenityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type AmenityController struct {
	AmenitySvc *services.AmenityService
}

func NewAmenityController(svc *services.AmenityService) *AmenityController {
	return &AmenityController{AmenitySvc: svc}
}

func amenityIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid amenity id")
		return 0, false
	}
	return uint(id), true
}

func (ctrl *AmenityController) CreateAmenity(c *gin.Context) {
	var payload AmenityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	amenity, err := ctrl.AmenitySvc.Create(middleware.CompanyID(c), services.AmenityInput{
		Name:        payload.Name,
		Description: payload.Description,
		Icon:        payload.Icon,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, amenity)
}

func (ctrl *AmenityController) GetAmenities(c *gin.Context) {
	amenities, err := ctrl.AmenitySvc.GetByCompany(middleware.CompanyID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, amenities)
}

func (ctrl *AmenityController) GetAmenity(c *gin.Context) {
	id, ok := amenityIDParam(c)
	if !ok {
		return
	}
	amenity, err := ctrl.AmenitySvc.GetByID(middleware.CompanyID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, amenity)
}

func (ctrl *AmenityController) UpdateAmenity(c *gin.Context) {
	id, ok := amenityIDParam(c)
	if !ok {
		return
	}

	var payload AmenityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	amenity, err := ctrl.AmenitySvc.Update(middleware.CompanyID(c), id, services.AmenityInput{
		Name:        payload.Name,
		Description: payload.Description,
		Icon:        payload.Icon,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, amenity)
}

func (ctrl *AmenityController) DeleteAmenity(c *gin.Context) {
	id, ok := amenityIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.AmenitySvc.Delete(middleware.CompanyID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "amenity deleted"})
}
