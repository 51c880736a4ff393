package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Company is the tenant. Every room, booking and staff user belongs to
// exactly one company.
type Company struct {
	gorm.Model

	Name string `json:"name" gorm:"uniqueIndex;type:varchar(100);not null"`

	// Address is stored as a JSON document (street, city, state, zipCode, country).
	Address datatypes.JSON `json:"address,omitempty" gorm:"column:address"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:CompanyID"`
	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:CompanyID"`
}
