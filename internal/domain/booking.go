package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ArchiveStatus string

const (
	ArchiveStatusCancelled ArchiveStatus = "CANCELLED"
	ArchiveStatusCompleted ArchiveStatus = "COMPLETED"
)

// Booking is a live stay. Once cancelled or completed it only exists as an ArchiveRecord.
type Booking struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	RoomID      string          `json:"room_id"`
	SellerID    string          `json:"seller_id"`
	GuestName   string          `json:"guest_name"`
	GuestAge    int             `json:"guest_age"`
	GuestGender string          `json:"guest_gender"`
	CheckIn     time.Time       `json:"check_in"`
	CheckOut    time.Time       `json:"check_out"`
	HotelName   string          `json:"hotel_name"`
	RoomType    string          `json:"room_type"`
	Location    string          `json:"location"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ArchiveRecord is the terminal copy of a booking. It keeps the booking id.
type ArchiveRecord struct {
	Booking
	Status     ArchiveStatus `json:"status"`
	ArchivedAt time.Time     `json:"archived_at"`
}

// SellerBooking is a live booking seen from the owner of the room.
type SellerBooking struct {
	Booking
	RoomImage string `json:"room_image"`
}

type CreateBookingInput struct {
	RoomID      string
	GuestName   string
	GuestAge    int
	GuestGender string
	CheckIn     time.Time
	CheckOut    time.Time
}

// NewArchiveRecord copies b into an archive record. imageURL overrides the booking
// snapshot when the room still has a cover image.
func NewArchiveRecord(b *Booking, status ArchiveStatus, imageURL string, at time.Time) *ArchiveRecord {
	rec := &ArchiveRecord{
		Booking:    *b,
		Status:     status,
		ArchivedAt: at,
	}
	if imageURL != "" {
		rec.ImageURL = imageURL
	}
	return rec
}
