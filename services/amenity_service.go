package services

import (
	"errors"
	"fmt"
	"strings"

	"hotelease-backend/models"

	"gorm.io/gorm"
)

type AmenityService struct {
	DB *gorm.DB
}

func NewAmenityService(db *gorm.DB) *AmenityService {
	return &AmenityService{DB: db}
}

type AmenityInput struct {
	Name        string
	Description string
	Icon        string
}

func (s *AmenityService) Create(companyID uint, in AmenityInput) (*models.Amenity, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: amenity name is required", ErrInvalidInput)
	}

	amenity := models.Amenity{
		CompanyID:   companyID,
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Icon:        strings.TrimSpace(in.Icon),
	}
	if err := s.DB.Create(&amenity).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: amenity '%s' already exists", ErrConflict, in.Name)
		}
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}
	return &amenity, nil
}

func (s *AmenityService) GetByID(companyID, amenityID uint) (*models.Amenity, error) {
	var amenity models.Amenity
	err := s.DB.Where("id = ? AND company_id = ?", amenityID, companyID).First(&amenity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: amenity not found in your company", ErrNotFound)
		}
		return nil, fmt.Errorf("db error loading amenity %d: %w", amenityID, err)
	}
	return &amenity, nil
}

func (s *AmenityService) GetByCompany(companyID uint) ([]models.Amenity, error) {
	var amenities []models.Amenity
	err := s.DB.Where("company_id = ?", companyID).Order("name ASC").Find(&amenities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve amenities: %w", err)
	}
	return amenities, nil
}

func (s *AmenityService) Update(companyID, amenityID uint, in AmenityInput) (*models.Amenity, error) {
	amenity, err := s.GetByID(companyID, amenityID)
	if err != nil {
		return nil, err
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: amenity name is required", ErrInvalidInput)
	}

	updates := map[string]interface{}{
		"name":        in.Name,
		"description": strings.TrimSpace(in.Description),
		"icon":        strings.TrimSpace(in.Icon),
	}
	if err := s.DB.Model(amenity).Updates(updates).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: amenity '%s' already exists", ErrConflict, in.Name)
		}
		return nil, fmt.Errorf("failed to update amenity: %w", err)
	}
	return s.GetByID(companyID, amenityID)
}

func (s *AmenityService) Delete(companyID, amenityID uint) error {
	amenity, err := s.GetByID(companyID, amenityID)
	if err != nil {
		return err
	}
	if err := s.DB.Delete(amenity).Error; err != nil {
		return fmt.Errorf("failed to delete amenity: %w", err)
	}
	return nil
}
