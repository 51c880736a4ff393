package models

import "gorm.io/gorm"

type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
	RoomTypeDeluxe RoomType = "Deluxe"
)

func (t RoomType) IsValid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return true
	}
	return false
}

// RoomStatus is the occupancy state of a room. It is mutated by the booking
// lifecycle (check-in, check-out, cancellation) or by an explicit
// administrative override, never directly by booking creation.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "Available"
	RoomOccupied    RoomStatus = "Occupied"
	RoomCleaning    RoomStatus = "Cleaning"
	RoomMaintenance RoomStatus = "Maintenance"
)

func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomCleaning, RoomMaintenance:
		return true
	}
	return false
}

type Room struct {
	gorm.Model

	// (company_id, room_number) is unique: two companies may both have a "101".
	CompanyID  uint   `json:"companyId" gorm:"column:company_id;uniqueIndex:idx_company_room;not null"`
	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex:idx_company_room;type:varchar(50);not null"`

	RoomType      RoomType   `json:"roomType" gorm:"column:room_type;type:varchar(20);not null"`
	PricePerNight float64    `json:"pricePerNight" gorm:"column:price_per_night;not null"`
	Status        RoomStatus `json:"status" gorm:"type:varchar(20);default:Available"`
	Floor         int        `json:"floor"`
	MaxOccupancy  int        `json:"maxOccupancy" gorm:"column:max_occupancy;not null"`
	Description   string     `json:"description" gorm:"type:text"`

	Amenities []Amenity `json:"amenities,omitempty" gorm:"many2many:room_amenities"`
	Company   Company   `json:"-" gorm:"foreignKey:CompanyID"`
}
