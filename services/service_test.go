package services

import (
	"testing"
	"time"

	"hotelease-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Company{},
		&models.Role{},
		&models.User{},
		&models.Amenity{},
		&models.Room{},
		&models.Booking{},
	))
	return db
}

type fixture struct {
	db *gorm.DB

	company models.Company
	other   models.Company
	staff   models.User
	room    models.Room
}

// newFixture seeds two tenants, a staff user for the first and a 100/night
// double room in each.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{db: db}

	f.company = models.Company{Name: "Grand Plaza"}
	require.NoError(t, db.Create(&f.company).Error)
	f.other = models.Company{Name: "Seaside Inn"}
	require.NoError(t, db.Create(&f.other).Error)

	f.staff = models.User{
		CompanyID: f.company.ID,
		Name:      "Front Desk",
		Email:     "frontdesk@example.com",
		Password:  "irrelevant",
		IsActive:  true,
	}
	require.NoError(t, db.Create(&f.staff).Error)

	f.room = models.Room{
		CompanyID:     f.company.ID,
		RoomNumber:    "101",
		RoomType:      models.RoomTypeDouble,
		PricePerNight: 100,
		Status:        models.RoomAvailable,
		Floor:         1,
		MaxOccupancy:  3,
	}
	require.NoError(t, db.Create(&f.room).Error)

	otherRoom := models.Room{
		CompanyID:     f.other.ID,
		RoomNumber:    "101",
		RoomType:      models.RoomTypeSingle,
		PricePerNight: 80,
		Status:        models.RoomAvailable,
		Floor:         1,
		MaxOccupancy:  2,
	}
	require.NoError(t, db.Create(&otherRoom).Error)

	return f
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (f *fixture) bookingInput(checkIn, checkOut time.Time) CreateBookingInput {
	return CreateBookingInput{
		RoomID:         f.room.ID,
		GuestName:      "Jordan Miles",
		GuestEmail:     "jordan@example.com",
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: 2,
	}
}
