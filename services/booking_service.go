package services

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
	"time"

	"hotelease-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// BookingService is the reservation engine. It owns the conflict check, the
// booking state machine application and the room status synchronization.
//
// Concurrency: the check-then-commit sequence for a room is serialized by an
// in-process mutex keyed by room ID, held across the whole transaction. This
// is sufficient for a single-process deployment; a multi-process deployment
// would need a row lock (SELECT ... FOR UPDATE on the room) instead.
type BookingService struct {
	DB *gorm.DB

	mu        sync.Mutex
	roomLocks map[uint]*sync.Mutex
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		DB:        db,
		roomLocks: make(map[uint]*sync.Mutex),
	}
}

// lockRoom acquires the per-room mutex and returns its release func.
func (s *BookingService) lockRoom(roomID uint) func() {
	s.mu.Lock()
	l, ok := s.roomLocks[roomID]
	if !ok {
		l = &sync.Mutex{}
		s.roomLocks[roomID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// nightsBetween counts nights between check-in and check-out, rounding
// partial days up to a full night.
func nightsBetween(checkIn, checkOut time.Time) int {
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n < 1 {
		n = 1
	}
	return n
}

// hasActiveConflict reports whether any non-cancelled booking on the room
// overlaps the half-open interval [checkIn, checkOut). Touching endpoints do
// not conflict: a check-in on another booking's check-out date is allowed.
// excludeID ignores the booking being modified on date updates.
func hasActiveConflict(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", models.BookingCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to query conflicting bookings: %w", err)
	}
	return n > 0, nil
}

type CreateBookingInput struct {
	RoomID          uint
	GuestID         *uint
	GuestName       string
	GuestEmail      string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumberOfGuests  int
	SpecialRequests string
}

// CreateBooking validates the request, checks the room's interval set for
// conflicts and commits a new Pending booking. companyID comes from the
// authenticated caller, never from the request body.
func (s *BookingService) CreateBooking(companyID, bookedByID uint, in CreateBookingInput) (*models.Booking, error) {
	in.GuestName = strings.TrimSpace(in.GuestName)
	in.GuestEmail = strings.ToLower(strings.TrimSpace(in.GuestEmail))

	if in.GuestName == "" {
		return nil, fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(in.GuestEmail) {
		return nil, fmt.Errorf("%w: invalid guest email", ErrInvalidInput)
	}
	if !in.CheckOutDate.After(in.CheckInDate) {
		return nil, fmt.Errorf("%w: check-out date must be after check-in date", ErrInvalidInput)
	}
	if in.NumberOfGuests < 1 {
		return nil, fmt.Errorf("%w: number of guests must be at least 1", ErrInvalidInput)
	}

	unlock := s.lockRoom(in.RoomID)
	defer unlock()

	var bookingID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Where("id = ? AND company_id = ?", in.RoomID, companyID).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: room not found in your company", ErrNotFound)
			}
			return fmt.Errorf("db error checking room %d: %w", in.RoomID, err)
		}

		if in.NumberOfGuests > room.MaxOccupancy {
			return fmt.Errorf("%w: number of guests exceeds room max occupancy of %d", ErrInvalidInput, room.MaxOccupancy)
		}

		conflict, err := hasActiveConflict(tx, room.ID, in.CheckInDate, in.CheckOutDate, 0)
		if err != nil {
			return err
		}
		if conflict {
			return fmt.Errorf("%w: room is not available for the selected dates", ErrConflict)
		}

		booking := models.Booking{
			CompanyID:       companyID,
			RoomID:          room.ID,
			GuestID:         in.GuestID,
			BookedByID:      bookedByID,
			ReferenceCode:   uuid.NewString(),
			GuestName:       in.GuestName,
			GuestEmail:      in.GuestEmail,
			CheckInDate:     in.CheckInDate,
			CheckOutDate:    in.CheckOutDate,
			Status:          models.BookingPending,
			TotalPrice:      float64(nightsBetween(in.CheckInDate, in.CheckOutDate)) * room.PricePerNight,
			PaymentStatus:   models.PaymentPending,
			NumberOfGuests:  in.NumberOfGuests,
			SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		bookingID = booking.ID
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetBooking(companyID, bookingID)
}

// UpdateBookingDates moves a booking to new dates on the same room. A missing
// bound inherits the booking's current value. The conflict check excludes the
// booking being moved, so shrinking or shifting within its own window always
// succeeds. Cross-room moves are unsupported.
func (s *BookingService) UpdateBookingDates(companyID, bookingID uint, newCheckIn, newCheckOut *time.Time) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Where("id = ? AND company_id = ?", bookingID, companyID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return nil, fmt.Errorf("db error loading booking %d: %w", bookingID, err)
	}

	if booking.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot change dates of a %s booking", ErrInvalidState, booking.Status)
	}

	checkIn := booking.CheckInDate
	checkOut := booking.CheckOutDate
	if newCheckIn != nil {
		checkIn = *newCheckIn
	}
	if newCheckOut != nil {
		checkOut = *newCheckOut
	}
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out date must be after check-in date", ErrInvalidInput)
	}

	unlock := s.lockRoom(booking.RoomID)
	defer unlock()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		conflict, err := hasActiveConflict(tx, booking.RoomID, checkIn, checkOut, booking.ID)
		if err != nil {
			return err
		}
		if conflict {
			return fmt.Errorf("%w: room is not available for the selected dates", ErrConflict)
		}

		var room models.Room
		if err := tx.First(&room, booking.RoomID).Error; err != nil {
			return fmt.Errorf("db error loading room %d: %w", booking.RoomID, err)
		}

		return tx.Model(&booking).Updates(map[string]interface{}{
			"check_in_date":  checkIn,
			"check_out_date": checkOut,
			"total_price":    float64(nightsBetween(checkIn, checkOut)) * room.PricePerNight,
		}).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetBooking(companyID, bookingID)
}

// UpdateStatus applies a state machine transition and synchronizes the room
// status in the same transaction, so the room can never disagree with the
// committed booking state.
func (s *BookingService) UpdateStatus(companyID, bookingID uint, target models.BookingStatus) (*models.Booking, error) {
	if !target.IsValid() {
		return nil, fmt.Errorf("%w: invalid booking status: %s", ErrInvalidInput, target)
	}

	var booking models.Booking
	if err := s.DB.Where("id = ? AND company_id = ?", bookingID, companyID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return nil, fmt.Errorf("db error loading booking %d: %w", bookingID, err)
	}

	// Cancellation removes an interval from the room's active set, so it has
	// to hold the same lock as creation.
	unlock := s.lockRoom(booking.RoomID)
	defer unlock()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// Re-read inside the transaction: the status may have moved since the
		// tenant check above.
		if err := tx.First(&booking, booking.ID).Error; err != nil {
			return err
		}

		if !booking.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidTransition, booking.Status, target)
		}

		if err := tx.Model(&booking).Update("status", target).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		booking.Status = target

		return s.syncRoomStatus(tx, &booking, target)
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetBooking(companyID, bookingID)
}

// syncRoomStatus derives the room occupancy status from a booking transition.
// Runs inside the transition's transaction.
func (s *BookingService) syncRoomStatus(tx *gorm.DB, booking *models.Booking, target models.BookingStatus) error {
	switch target {
	case models.BookingCheckedIn:
		return s.setRoomStatus(tx, booking.RoomID, models.RoomOccupied)

	case models.BookingCheckedOut:
		return s.setRoomStatus(tx, booking.RoomID, models.RoomCleaning)

	case models.BookingCancelled:
		now := time.Now()
		// Room status only needs re-evaluation when the cancelled booking was
		// the one driving current occupancy.
		if now.Before(booking.CheckInDate) || !now.Before(booking.CheckOutDate) {
			return nil
		}

		var covering int64
		err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND id <> ?", booking.RoomID, booking.ID).
			Where("status <> ?", models.BookingCancelled).
			Where("check_in_date <= ? AND check_out_date > ?", now, now).
			Count(&covering).Error
		if err != nil {
			return fmt.Errorf("failed to re-evaluate room occupancy: %w", err)
		}
		if covering > 0 {
			return nil
		}

		var room models.Room
		if err := tx.First(&room, booking.RoomID).Error; err != nil {
			return err
		}
		if room.Status == models.RoomOccupied {
			return s.setRoomStatus(tx, room.ID, models.RoomAvailable)
		}
		return nil
	}
	return nil
}

func (s *BookingService) setRoomStatus(tx *gorm.DB, roomID uint, status models.RoomStatus) error {
	if err := tx.Model(&models.Room{}).Where("id = ?", roomID).Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update room %d status: %w", roomID, err)
	}
	return nil
}

// DeleteBooking removes a booking. Only Pending bookings may be deleted;
// anything further along must be cancelled instead.
func (s *BookingService) DeleteBooking(companyID, bookingID uint) error {
	var booking models.Booking
	if err := s.DB.Where("id = ? AND company_id = ?", bookingID, companyID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return fmt.Errorf("db error loading booking %d: %w", bookingID, err)
	}

	if booking.Status != models.BookingPending {
		return fmt.Errorf("%w: only pending bookings can be deleted", ErrInvalidState)
	}

	if err := s.DB.Delete(&booking).Error; err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

// UpdatePaymentStatus flips the booking between Pending and Paid.
func (s *BookingService) UpdatePaymentStatus(companyID, bookingID uint, status models.PaymentStatus) (*models.Booking, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid payment status: %s", ErrInvalidInput, status)
	}

	var booking models.Booking
	if err := s.DB.Where("id = ? AND company_id = ?", bookingID, companyID).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return nil, fmt.Errorf("db error loading booking %d: %w", bookingID, err)
	}

	if err := s.DB.Model(&booking).Update("payment_status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	return s.GetBooking(companyID, bookingID)
}

// GetBooking returns a booking with room and guest details resolved,
// tenant-scoped to companyID.
func (s *BookingService) GetBooking(companyID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Room").
		Preload("Guest").
		Where("id = ? AND company_id = ?", bookingID, companyID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &booking, nil
}

func (s *BookingService) GetBookingsByCompany(companyID uint) ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.
		Preload("Room").
		Preload("Guest").
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetBookingsByRoom(companyID, roomID uint) ([]models.Booking, error) {
	var room models.Room
	if err := s.DB.Where("id = ? AND company_id = ?", roomID, companyID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: room not found in your company", ErrNotFound)
		}
		return nil, fmt.Errorf("db error checking room %d: %w", roomID, err)
	}

	var list []models.Booking
	err := s.DB.
		Preload("Guest").
		Where("room_id = ?", roomID).
		Order("check_in_date ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve room bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetBookingsByGuest(companyID, guestID uint) ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.
		Preload("Room").
		Where("company_id = ? AND guest_id = ?", companyID, guestID).
		Order("check_in_date ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve guest bookings: %w", err)
	}
	return list, nil
}
