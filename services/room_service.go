package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotelease-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomInput struct {
	RoomNumber    string
	RoomType      models.RoomType
	PricePerNight float64
	Floor         int
	MaxOccupancy  int
	Description   string
	AmenityIDs    []uint
}

func (s *RoomService) validateInput(in *RoomInput) error {
	in.RoomNumber = strings.TrimSpace(in.RoomNumber)
	if in.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if !in.RoomType.IsValid() {
		return fmt.Errorf("%w: invalid room type: %s", ErrInvalidInput, in.RoomType)
	}
	if in.PricePerNight < 0 {
		return fmt.Errorf("%w: price per night cannot be negative", ErrInvalidInput)
	}
	if in.MaxOccupancy < 1 {
		return fmt.Errorf("%w: maximum occupancy must be at least 1", ErrInvalidInput)
	}
	return nil
}

// amenitiesForCompany resolves amenity IDs, rejecting any that belong to a
// different tenant.
func (s *RoomService) amenitiesForCompany(tx *gorm.DB, companyID uint, ids []uint) ([]models.Amenity, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var amenities []models.Amenity
	if err := tx.Where("company_id = ? AND id IN ?", companyID, ids).Find(&amenities).Error; err != nil {
		return nil, fmt.Errorf("db error loading amenities: %w", err)
	}
	if len(amenities) != len(ids) {
		return nil, fmt.Errorf("%w: amenity not found in your company", ErrNotFound)
	}
	return amenities, nil
}

func (s *RoomService) Create(companyID uint, in RoomInput) (*models.Room, error) {
	if err := s.validateInput(&in); err != nil {
		return nil, err
	}

	room := models.Room{
		CompanyID:     companyID,
		RoomNumber:    in.RoomNumber,
		RoomType:      in.RoomType,
		PricePerNight: in.PricePerNight,
		Status:        models.RoomAvailable,
		Floor:         in.Floor,
		MaxOccupancy:  in.MaxOccupancy,
		Description:   strings.TrimSpace(in.Description),
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		amenities, err := s.amenitiesForCompany(tx, companyID, in.AmenityIDs)
		if err != nil {
			return err
		}
		room.Amenities = amenities

		if err := tx.Create(&room).Error; err != nil {
			if isDuplicateKeyError(err) {
				return fmt.Errorf("%w: room number '%s' already exists", ErrConflict, room.RoomNumber)
			}
			return fmt.Errorf("failed to create room: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetByID(companyID, room.ID)
}

func (s *RoomService) GetByID(companyID, roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.Preload("Amenities").Where("id = ? AND company_id = ?", roomID, companyID).First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room not found in your company", ErrNotFound)
		}
		return nil, fmt.Errorf("db error loading room %d: %w", roomID, err)
	}
	return &room, nil
}

func (s *RoomService) GetByCompany(companyID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Preload("Amenities").Where("company_id = ?", companyID).Order("room_number ASC").Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Update(companyID, roomID uint, in RoomInput) (*models.Room, error) {
	if err := s.validateInput(&in); err != nil {
		return nil, err
	}

	room, err := s.GetByID(companyID, roomID)
	if err != nil {
		return nil, err
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		amenities, err := s.amenitiesForCompany(tx, companyID, in.AmenityIDs)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"room_number":     in.RoomNumber,
			"room_type":       in.RoomType,
			"price_per_night": in.PricePerNight,
			"floor":           in.Floor,
			"max_occupancy":   in.MaxOccupancy,
			"description":     strings.TrimSpace(in.Description),
		}
		if err := tx.Model(room).Updates(updates).Error; err != nil {
			if isDuplicateKeyError(err) {
				return fmt.Errorf("%w: room number '%s' already exists", ErrConflict, in.RoomNumber)
			}
			return fmt.Errorf("failed to update room: %w", err)
		}

		if in.AmenityIDs != nil {
			if err := tx.Model(room).Association("Amenities").Replace(amenities); err != nil {
				return fmt.Errorf("failed to update room amenities: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetByID(companyID, roomID)
}

// UpdateStatus is the administrative override; the reservation engine
// otherwise owns room status.
func (s *RoomService) UpdateStatus(companyID, roomID uint, status models.RoomStatus) (*models.Room, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid room status: %s", ErrInvalidInput, status)
	}

	room, err := s.GetByID(companyID, roomID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(room).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update room status: %w", err)
	}
	return s.GetByID(companyID, roomID)
}

// Delete removes a room. Rooms referenced by any booking, cancelled or not,
// cannot be deleted.
func (s *RoomService) Delete(companyID, roomID uint) error {
	room, err := s.GetByID(companyID, roomID)
	if err != nil {
		return err
	}

	var refs int64
	if err := s.DB.Model(&models.Booking{}).Where("room_id = ?", roomID).Count(&refs).Error; err != nil {
		return fmt.Errorf("db error counting room bookings: %w", err)
	}
	if refs > 0 {
		return fmt.Errorf("%w: room has bookings and cannot be deleted", ErrInvalidState)
	}

	if err := s.DB.Delete(room).Error; err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

// FindAvailable lists the company's rooms that are marked Available and have
// no active booking overlapping [start, end).
func (s *RoomService) FindAvailable(companyID uint, start, end time.Time) ([]models.Room, error) {
	if !end.After(start) {
		return nil, fmt.Errorf("%w: end date must be after start date", ErrInvalidInput)
	}

	sub := s.DB.Model(&models.Booking{}).
		Select("room_id").
		Where("status <> ?", models.BookingCancelled).
		Where("check_in_date < ? AND check_out_date > ?", end, start)

	var rooms []models.Room
	err := s.DB.
		Preload("Amenities").
		Where("company_id = ? AND status = ?", companyID, models.RoomAvailable).
		Where("id NOT IN (?)", sub).
		Order("room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find available rooms: %w", err)
	}
	return rooms, nil
}
