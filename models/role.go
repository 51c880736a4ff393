package models

import "gorm.io/gorm"

// Role names seeded at startup.
const (
	RoleAdmin        = "Admin"
	RoleHotelManager = "HotelManager"
	RoleReception    = "Reception"
	RoleHousekeeping = "Housekeeping"
	RoleGuest        = "Guest"
)

type Role struct {
	gorm.Model

	Name        string `json:"name" gorm:"uniqueIndex;type:varchar(50);not null"`
	Description string `json:"description" gorm:"type:varchar(255)"`
}
