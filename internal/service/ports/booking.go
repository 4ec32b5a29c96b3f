package ports

import (
	"context"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

// BookRoomFunc decides whether a booking may be placed. It runs while the room row is
// locked and receives the room together with its live bookings overlapping the request.
type BookRoomFunc func(room *domain.Room, live []*domain.Booking) (*domain.Booking, error)

type BookingRepo interface {
	Book(ctx context.Context, roomID string, checkIn, checkOut time.Time, decide BookRoomFunc) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.SellerBooking, error)
	ListExpired(ctx context.Context, today time.Time) ([]*domain.Booking, error)
	// MoveToArchive inserts rec and deletes the live booking with the same id in one transaction.
	MoveToArchive(ctx context.Context, rec *domain.ArchiveRecord) error
}

type ArchiveRepo interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.ArchiveRecord, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.ArchiveRecord, error)
}
