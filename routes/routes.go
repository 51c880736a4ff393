package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotelease-backend/controllers"
	"hotelease-backend/middleware"
	"hotelease-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances onto the route tree. Everything
// except /health and /auth sits behind the identity middleware.
func SetupRouter(
	ac *controllers.AuthController,
	cc *controllers.CompanyController,
	uc *controllers.UserController,
	rc *controllers.RoomController,
	amc *controllers.AmenityController,
	bc *controllers.BookingController,
	rlc *controllers.RoleController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		protected := api.Group("")
		protected.Use(middleware.Protect())

		staff := middleware.Authorize(models.RoleAdmin, models.RoleHotelManager, models.RoleReception)
		managers := middleware.Authorize(models.RoleAdmin, models.RoleHotelManager)
		admins := middleware.Authorize(models.RoleAdmin)

		companies := protected.Group("/companies")
		{
			companies.GET("/me", cc.GetCompany)
			companies.PUT("/me", admins, cc.UpdateCompany)
		}

		users := protected.Group("/users")
		{
			users.GET("", admins, uc.GetUsers)
			users.POST("", admins, uc.CreateUser)
			users.GET("/:id", admins, uc.GetUser)
			users.PUT("/:id", admins, uc.UpdateUser)
			users.DELETE("/:id", admins, uc.DeactivateUser)
		}

		roles := protected.Group("/roles")
		{
			roles.GET("", rlc.GetRoles)
		}

		amenities := protected.Group("/amenities")
		{
			amenities.GET("", amc.GetAmenities)
			amenities.POST("", managers, amc.CreateAmenity)
			amenities.GET("/:id", amc.GetAmenity)
			amenities.PUT("/:id", managers, amc.UpdateAmenity)
			amenities.DELETE("/:id", managers, amc.DeleteAmenity)
		}

		rooms := protected.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// must come before /:id
			rooms.GET("/available", rc.GetAvailableRooms)

			rooms.POST("", managers, rc.CreateRoom)
			rooms.GET("/:id", rc.GetRoom)
			rooms.PUT("/:id", managers, rc.UpdateRoom)
			rooms.PATCH("/:id/status", middleware.Authorize(models.RoleAdmin, models.RoleHotelManager, models.RoleHousekeeping), rc.UpdateRoomStatus)
			rooms.DELETE("/:id", managers, rc.DeleteRoom)
		}

		bookings := protected.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", staff, bc.CreateBooking)
			bookings.GET("/room/:roomId", bc.GetBookingsByRoom)
			bookings.GET("/guest/:guestId", bc.GetBookingsByGuest)
			bookings.GET("/:id", bc.GetBooking)
			bookings.PUT("/:id", staff, bc.UpdateBookingDates)
			bookings.PATCH("/:id/status", staff, bc.UpdateBookingStatus)
			bookings.PATCH("/:id/payment", staff, bc.UpdatePaymentStatus)
			bookings.DELETE("/:id", staff, bc.DeleteBooking)
		}
	}

	return r
}
