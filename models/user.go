package models

import "gorm.io/gorm"

// User is a staff member of a company. Guests checking in without an
// account are recorded on the booking itself (GuestName / GuestEmail).
type User struct {
	gorm.Model

	CompanyID uint   `json:"companyId" gorm:"index;column:company_id;not null"`
	Name      string `json:"name" gorm:"type:varchar(100);not null"`
	Email     string `json:"email" gorm:"uniqueIndex;type:varchar(100);not null"`
	Password  string `json:"-" gorm:"type:varchar(100);not null"`
	RoleID    uint   `json:"roleId" gorm:"column:role_id"`
	IsActive  bool   `json:"isActive" gorm:"column:is_active;default:true"`

	Role    Role    `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Company Company `json:"-" gorm:"foreignKey:CompanyID"`
}
