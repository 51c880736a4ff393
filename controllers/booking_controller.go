package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotelease-backend/middleware"
	"hotelease-backend/models"
	"hotelease-backend/services"
	"hotelease-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateBookingRequest struct {
	RoomID          uint   `json:"roomId" binding:"required"`
	GuestID         *uint  `json:"guestId"`
	GuestName       string `json:"guestName" binding:"required"`
	GuestEmail      string `json:"guestEmail" binding:"required"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

type UpdateBookingDatesRequest struct {
	CheckInDate  *string `json:"checkInDate"`
	CheckOutDate *string `json:"checkOutDate"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return 0, false
	}
	return uint(id), true
}

// POST /api/v1/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, err := parseDate(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := parseDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(
		middleware.CompanyID(c),
		middleware.UserID(c),
		services.CreateBookingInput{
			RoomID:          payload.RoomID,
			GuestID:         payload.GuestID,
			GuestName:       payload.GuestName,
			GuestEmail:      payload.GuestEmail,
			CheckInDate:     checkIn,
			CheckOutDate:    checkOut,
			NumberOfGuests:  payload.NumberOfGuests,
			SpecialRequests: payload.SpecialRequests,
		},
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GET /api/v1/bookings
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.GetBookingsByCompany(middleware.CompanyID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GET /api/v1/bookings/:id
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBooking(middleware.CompanyID(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GET /api/v1/bookings/room/:roomId
func (ctrl *BookingController) GetBookingsByRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 64)
	if err != nil || roomID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}

	bookings, svcErr := ctrl.BookingSvc.GetBookingsByRoom(middleware.CompanyID(c), uint(roomID))
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GET /api/v1/bookings/guest/:guestId
func (ctrl *BookingController) GetBookingsByGuest(c *gin.Context) {
	guestID, err := strconv.ParseUint(c.Param("guestId"), 10, 64)
	if err != nil || guestID == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid guest id")
		return
	}

	bookings, svcErr := ctrl.BookingSvc.GetBookingsByGuest(middleware.CompanyID(c), uint(guestID))
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// PUT /api/v1/bookings/:id — date amendment on the same room.
func (ctrl *BookingController) UpdateBookingDates(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var payload UpdateBookingDatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if payload.CheckInDate == nil && payload.CheckOutDate == nil {
		utils.JSONError(c, http.StatusBadRequest, "checkInDate or checkOutDate is required")
		return
	}

	var checkIn, checkOut *time.Time
	if payload.CheckInDate != nil {
		t, err := parseDate(*payload.CheckInDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		checkIn = &t
	}
	if payload.CheckOutDate != nil {
		t, err := parseDate(*payload.CheckOutDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		checkOut = &t
	}

	booking, err := ctrl.BookingSvc.UpdateBookingDates(middleware.CompanyID(c), id, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// PATCH /api/v1/bookings/:id/status
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var payload UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: status is required")
		return
	}

	target, err := models.ParseBookingStatus(payload.Status)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, svcErr := ctrl.BookingSvc.UpdateStatus(middleware.CompanyID(c), id, target)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// PATCH /api/v1/bookings/:id/payment
func (ctrl *BookingController) UpdatePaymentStatus(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var payload UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: paymentStatus is required")
		return
	}

	booking, err := ctrl.BookingSvc.UpdatePaymentStatus(middleware.CompanyID(c), id, models.PaymentStatus(payload.PaymentStatus))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// DELETE /api/v1/bookings/:id
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := ctrl.BookingSvc.DeleteBooking(middleware.CompanyID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "booking deleted"})
}
