package models

import "gorm.io/gorm"

// Amenity name is unique per company, not globally.
type Amenity struct {
	gorm.Model

	CompanyID   uint   `json:"companyId" gorm:"column:company_id;uniqueIndex:idx_company_amenity;not null"`
	Name        string `json:"name" gorm:"type:varchar(100);uniqueIndex:idx_company_amenity;not null"`
	Description string `json:"description" gorm:"type:varchar(255)"`
	Icon        string `json:"icon" gorm:"type:varchar(100)"`
}
