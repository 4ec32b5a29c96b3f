package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, rec *domain.ArchiveRecord)
	NotifyBookingCompleted(ctx context.Context, user *domain.User, rec *domain.ArchiveRecord)
}
