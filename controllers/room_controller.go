package controllers

import (
	"net/http"
	"strconv"

	"hotelease-backend/middleware"
	"hotelease-backend/models"
	"hotelease-backend/services"
	"hotelease-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomRequest struct {
	RoomNumber    string  `json:"roomNumber" binding:"required"`
	RoomType      string  `json:"roomType" binding:"required"`
	PricePerNight float64 `json:"pricePerNight"`
	Floor         int     `json:"floor"`
	MaxOccupancy  int     `json:"maxOccupancy" binding:"required"`
	Description   string  `json:"description"`
	AmenityIDs    []uint  `json:"amenityIds"`
}

type RoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

func roomIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return 0, false
	}
	return uint(id), true
}

func (p RoomRequest) toInput() services.RoomInput {
	return services.RoomInput{
		RoomNumber:    p.RoomNumber,
		RoomType:      models.RoomType(p.RoomType),
		PricePerNight: p.PricePerNight,
		Floor:         p.Floor,
		MaxOccupancy:  p.MaxOccupancy,
		Description:   p.Description,
		AmenityIDs:    p.AmenityIDs,
	}
}

// POST /api/v1/rooms
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload RoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := ctrl.RoomSvc.Create(middleware.CompanyID(c), payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// GET /api/v1/rooms
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.RoomSvc.GetByCompany(middleware.CompanyID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/v1/rooms/available?startDate=...&endDate=...
func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid endDate")
		return
	}

	rooms, svcErr := ctrl.RoomSvc.FindAvailable(middleware.CompanyID(c), start, end)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GET /api/v1/rooms/:id
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	room, err := ctrl.RoomSvc.GetByID(middleware.CompanyID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// PUT /api/v1/rooms/:id
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}

	var payload RoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := ctrl.RoomSvc.Update(middleware.CompanyID(c), id, payload.toInput())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// PATCH /api/v1/rooms/:id/status — administrative override.
func (ctrl *RoomController) UpdateRoomStatus(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}

	var payload RoomStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: status is required")
		return
	}

	room, err := ctrl.RoomSvc.UpdateStatus(middleware.CompanyID(c), id, models.RoomStatus(payload.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DELETE /api/v1/rooms/:id
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := roomIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.RoomSvc.Delete(middleware.CompanyID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
