package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"hotelease-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

func (s *CompanyService) Get(companyID uint) (*models.Company, error) {
	var company models.Company
	if err := s.DB.First(&company, companyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: company not found", ErrNotFound)
		}
		return nil, fmt.Errorf("db error loading company %d: %w", companyID, err)
	}
	return &company, nil
}

// Update renames the company and/or replaces its address document.
func (s *CompanyService) Update(companyID uint, name string, address map[string]string) (*models.Company, error) {
	company, err := s.Get(companyID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		updates["name"] = trimmed
	}
	if len(address) > 0 {
		raw, err := json.Marshal(address)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid address", ErrInvalidInput)
		}
		updates["address"] = datatypes.JSON(raw)
	}
	if len(updates) == 0 {
		return company, nil
	}

	if err := s.DB.Model(company).Updates(updates).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: company name already registered", ErrConflict)
		}
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return s.Get(companyID)
}
