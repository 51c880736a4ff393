package models

import (
	"time"

	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// Booking occupies the half-open interval [CheckInDate, CheckOutDate) on its
// room. For any room, bookings whose status is not Cancelled must have
// pairwise non-overlapping intervals; the reservation engine enforces this.
type Booking struct {
	gorm.Model

	CompanyID uint  `json:"companyId" gorm:"column:company_id;index:idx_company_status;not null"`
	RoomID    uint  `json:"roomId" gorm:"column:room_id;index:idx_room_dates;not null"`
	GuestID   *uint `json:"guestId,omitempty" gorm:"column:guest_id"`

	// BookedByID is the staff user who created the booking.
	BookedByID uint `json:"bookedById" gorm:"column:booked_by_id;not null"`

	ReferenceCode string `json:"referenceCode" gorm:"column:reference_code;uniqueIndex;type:varchar(64)"`
	GuestName     string `json:"guestName" gorm:"column:guest_name;type:varchar(100);not null"`
	GuestEmail    string `json:"guestEmail" gorm:"column:guest_email;type:varchar(100);index;not null"`

	CheckInDate  time.Time `json:"checkInDate" gorm:"column:check_in_date;index:idx_room_dates;not null"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"column:check_out_date;index:idx_room_dates;not null"`

	Status        BookingStatus `json:"status" gorm:"type:varchar(20);index:idx_company_status;default:Pending"`
	TotalPrice    float64       `json:"totalPrice" gorm:"column:total_price;not null"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"column:payment_status;type:varchar(20);default:Pending"`

	NumberOfGuests  int    `json:"numberOfGuests" gorm:"column:number_of_guests;not null"`
	SpecialRequests string `json:"specialRequests,omitempty" gorm:"column:special_requests;type:text"`

	Room     Room  `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Guest    *User `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	BookedBy User  `json:"bookedBy,omitempty" gorm:"foreignKey:BookedByID"`
}
