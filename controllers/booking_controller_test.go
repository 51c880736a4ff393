package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelease-backend/config"
	"hotelease-backend/controllers"
	"hotelease-backend/models"
	"hotelease-backend/routes"
	"hotelease-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type apiTest struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SEED_DEFAULT_ADMIN", "false")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.Role{},
		&models.User{},
		&models.Amenity{},
		&models.Room{},
		&models.Booking{},
	))
	require.NoError(t, config.SeedDatabase(db))

	router := routes.SetupRouter(
		controllers.NewAuthController(services.NewAuthService(db)),
		controllers.NewCompanyController(services.NewCompanyService(db)),
		controllers.NewUserController(services.NewUserService(db)),
		controllers.NewRoomController(services.NewRoomService(db)),
		controllers.NewAmenityController(services.NewAmenityService(db)),
		controllers.NewBookingController(services.NewBookingService(db)),
		controllers.NewRoleController(db),
	)

	return &apiTest{t: t, router: router}
}

func (a *apiTest) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *apiTest) decode(w *httptest.ResponseRecorder) map[string]any {
	a.t.Helper()
	var out map[string]any
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// register creates a tenant with its admin and stores the returned token for
// subsequent requests.
func (a *apiTest) register(companyName, email string) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/v1/auth/register", gin.H{
		"companyName": companyName,
		"name":        "Owner",
		"email":       email,
		"password":    "supersecret",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	data := a.decode(w)["data"].(map[string]any)
	a.token = data["token"].(string)
}

func (a *apiTest) createRoom(number string) uint {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/v1/rooms", gin.H{
		"roomNumber":    number,
		"roomType":      "Double",
		"pricePerNight": 100,
		"floor":         1,
		"maxOccupancy":  3,
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	data := a.decode(w)["data"].(map[string]any)
	return uint(data["ID"].(float64))
}

func bookingBody(roomID uint, checkIn, checkOut string) gin.H {
	return gin.H{
		"roomId":         roomID,
		"guestName":      "Jordan Miles",
		"guestEmail":     "jordan@example.com",
		"checkInDate":    checkIn,
		"checkOutDate":   checkOut,
		"numberOfGuests": 2,
	}
}

func TestBookingEndpoints(t *testing.T) {
	a := newAPITest(t)
	a.register("Grand Plaza", "owner@example.com")
	roomID := a.createRoom("101")

	w := a.do(http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-01-01", "2024-01-04"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := a.decode(w)["data"].(map[string]any)
	bookingID := uint(data["ID"].(float64))
	assert.Equal(t, "Pending", data["status"])
	assert.Equal(t, 300.0, data["totalPrice"])
	assert.NotEmpty(t, data["referenceCode"])

	// Conflicting interval is rejected.
	w = a.do(http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-01-02", "2024-01-05"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Back to back is fine.
	w = a.do(http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-01-04", "2024-01-06"))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Unknown room maps to 404.
	w = a.do(http.MethodPost, "/api/v1/bookings", bookingBody(9999, "2024-02-01", "2024-02-04"))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/api/v1/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := a.decode(w)["data"].([]any)
	assert.Len(t, list, 2)

	w = a.do(http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d", bookingID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodGet, fmt.Sprintf("/api/v1/bookings/room/%d", roomID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, a.decode(w)["data"].([]any), 2)
}

func TestBookingStatusEndpoint(t *testing.T) {
	a := newAPITest(t)
	a.register("Grand Plaza", "owner@example.com")
	roomID := a.createRoom("101")

	w := a.do(http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-01-01", "2024-01-04"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookingID := uint(a.decode(w)["data"].(map[string]any)["ID"].(float64))

	statusPath := fmt.Sprintf("/api/v1/bookings/%d/status", bookingID)

	// Pending cannot go straight to CheckedIn.
	w = a.do(http.MethodPatch, statusPath, gin.H{"status": "CheckedIn"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPatch, statusPath, gin.H{"status": "Confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodPatch, statusPath, gin.H{"status": "CheckedIn"})
	require.Equal(t, http.StatusOK, w.Code)

	// Check-in flips the room to Occupied.
	w = a.do(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%d", roomID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Occupied", a.decode(w)["data"].(map[string]any)["status"])

	// Unknown status name is a 400, not a transition error.
	w = a.do(http.MethodPatch, statusPath, gin.H{"status": "Archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Confirmed bookings cannot be deleted, only cancelled.
	w = a.do(http.MethodDelete, fmt.Sprintf("/api/v1/bookings/%d", bookingID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPatch, fmt.Sprintf("/api/v1/bookings/%d/payment", bookingID), gin.H{"paymentStatus": "Paid"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Paid", a.decode(w)["data"].(map[string]any)["paymentStatus"])
}

func TestBookingDatesEndpoint(t *testing.T) {
	a := newAPITest(t)
	a.register("Grand Plaza", "owner@example.com")
	roomID := a.createRoom("101")

	w := a.do(http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-01-01", "2024-01-04"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookingID := uint(a.decode(w)["data"].(map[string]any)["ID"].(float64))

	w = a.do(http.MethodPut, fmt.Sprintf("/api/v1/bookings/%d", bookingID), gin.H{
		"checkOutDate": "2024-01-06",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 500.0, a.decode(w)["data"].(map[string]any)["totalPrice"])
}

func TestAuthRequired(t *testing.T) {
	a := newAPITest(t)

	w := a.do(http.MethodGet, "/api/v1/bookings", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	a.token = "not-a-token"
	w = a.do(http.MethodGet, "/api/v1/bookings", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleEnforcement(t *testing.T) {
	a := newAPITest(t)
	a.register("Grand Plaza", "owner@example.com")
	roomID := a.createRoom("101")

	// Add a housekeeping user and log in as them.
	w := a.do(http.MethodPost, "/api/v1/users", gin.H{
		"name":     "Cleaner",
		"email":    "cleaner@example.com",
		"password": "supersecret",
		"role":     "Housekeeping",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "cleaner@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	a.token = a.decode(w)["data"].(map[string]any)["token"].(string)

	// Housekeeping may flip room status but not create bookings.
	w = a.do(http.MethodPatch, fmt.Sprintf("/api/v1/rooms/%d/status", roomID), gin.H{"status": "Cleaning"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-01-01", "2024-01-04"))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTenantIsolationOverAPI(t *testing.T) {
	a := newAPITest(t)
	a.register("Grand Plaza", "owner@example.com")
	roomID := a.createRoom("101")

	w := a.do(http.MethodPost, "/api/v1/bookings", bookingBody(roomID, "2024-01-01", "2024-01-04"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bookingID := uint(a.decode(w)["data"].(map[string]any)["ID"].(float64))

	// A second tenant cannot see the first tenant's data, even with valid IDs.
	a.register("Seaside Inn", "owner@seaside.example.com")

	w = a.do(http.MethodGet, fmt.Sprintf("/api/v1/bookings/%d", bookingID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, fmt.Sprintf("/api/v1/rooms/%d", roomID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/api/v1/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, a.decode(w)["data"])
}
