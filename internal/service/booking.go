package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/metrics"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	archiveRepo ports.ArchiveRepo
	roomRepo    ports.RoomRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	archiveRepo ports.ArchiveRepo,
	roomRepo ports.RoomRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		archiveRepo: archiveRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *BookingService) CreateBooking(ctx context.Context, userID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := validateBookingInput(input); err != nil {
		return nil, err
	}

	checkIn := domain.DateOf(input.CheckIn)
	checkOut := domain.DateOf(input.CheckOut)

	// availability, conflict check and insert all happen under the room lock
	booking, err := s.bookingRepo.Book(ctx, input.RoomID, checkIn, checkOut,
		func(room *domain.Room, live []*domain.Booking) (*domain.Booking, error) {
			if !room.Available {
				return nil, domain.ErrRoomUnavailable
			}

			if conflicts := domain.Conflicts(live, checkIn, checkOut); len(conflicts) > 0 {
				s.logger.Debug("booking conflict",
					logger.String("room_id", room.ID),
					logger.Int("conflicts", len(conflicts)),
				)
				return nil, domain.ErrDatesConflict
			}

			return &domain.Booking{
				ID:          uuid.New().String(),
				UserID:      userID,
				RoomID:      room.ID,
				SellerID:    room.SellerID,
				GuestName:   strings.TrimSpace(input.GuestName),
				GuestAge:    input.GuestAge,
				GuestGender: input.GuestGender,
				CheckIn:     checkIn,
				CheckOut:    checkOut,
				HotelName:   room.HotelName,
				RoomType:    room.RoomType,
				Location:    room.Location,
				Price:       room.Price,
				ImageURL:    room.CoverImage(),
				CreatedAt:   s.now().UTC(),
			}, nil
		},
	)
	if err != nil {
		if errors.Is(err, domain.ErrDatesConflict) {
			metrics.BookingConflicts.Inc()
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreated.Inc()
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", booking.RoomID),
		logger.String("user_id", userID),
		logger.String("check_in", domain.FormatDate(checkIn)),
		logger.String("check_out", domain.FormatDate(checkOut)),
	)

	go s.notifyCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, userID, bookingID string) (*domain.ArchiveRecord, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, fmt.Errorf("%w: you can only cancel your own bookings", domain.ErrForbidden)
	}

	rec := domain.NewArchiveRecord(
		booking, domain.ArchiveStatusCancelled,
		s.roomImage(ctx, booking.RoomID), s.now().UTC(),
	)
	if err = s.bookingRepo.MoveToArchive(ctx, rec); err != nil {
		return nil, fmt.Errorf("archive booking: %w", err)
	}

	metrics.BookingsArchived.WithLabelValues(string(rec.Status)).Inc()
	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", booking.RoomID),
		logger.String("user_id", userID),
	)

	go s.notifyArchived(context.WithoutCancel(ctx), []*domain.ArchiveRecord{rec})

	return rec, nil
}

// SweepExpired archives as COMPLETED every live booking whose check-out is before today.
// Each booking is moved in its own transaction; failures are logged and skipped.
func (s *BookingService) SweepExpired(ctx context.Context, today time.Time) ([]*domain.ArchiveRecord, error) {
	today = domain.DateOf(today)

	expired, err := s.bookingRepo.ListExpired(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("list expired: %w", err)
	}

	var archived []*domain.ArchiveRecord
	for _, b := range expired {
		if err = ctx.Err(); err != nil {
			return archived, fmt.Errorf("sweep interrupted: %w", err)
		}

		rec := domain.NewArchiveRecord(
			b, domain.ArchiveStatusCompleted,
			s.roomImage(ctx, b.RoomID), s.now().UTC(),
		)
		if err = s.bookingRepo.MoveToArchive(ctx, rec); err != nil {
			if errors.Is(err, domain.ErrBookingNotFound) {
				s.logger.Debug("expired booking already gone",
					logger.String("booking_id", b.ID),
				)
				continue
			}
			s.logger.Error("failed to archive expired booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		metrics.BookingsArchived.WithLabelValues(string(rec.Status)).Inc()
		archived = append(archived, rec)
	}

	if len(archived) > 0 {
		s.logger.Info("expired bookings archived",
			logger.Int("count", len(archived)),
			logger.Int("found", len(expired)),
			logger.String("today", domain.FormatDate(today)),
		)

		go s.notifyArchived(context.WithoutCancel(ctx), archived)
	}

	return archived, nil
}

func (s *BookingService) ListLive(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) ListArchived(ctx context.Context, userID string) ([]*domain.ArchiveRecord, error) {
	return s.archiveRepo.ListByUser(ctx, userID)
}

func (s *BookingService) ListForSeller(ctx context.Context, sellerID string) ([]*domain.SellerBooking, error) {
	return s.bookingRepo.ListBySeller(ctx, sellerID)
}

func (s *BookingService) SellerHistory(ctx context.Context, sellerID string) ([]*domain.ArchiveRecord, error) {
	return s.archiveRepo.ListBySeller(ctx, sellerID)
}

// roomImage is best-effort: a deleted room or a failed lookup yields "".
func (s *BookingService) roomImage(ctx context.Context, roomID string) string {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if !errors.Is(err, domain.ErrRoomNotFound) {
			s.logger.Warn("failed to resolve room image",
				logger.String("room_id", roomID),
				logger.String("error", err.Error()),
			)
		}
		return ""
	}
	return room.CoverImage()
}

func (s *BookingService) notifyCreated(ctx context.Context, b *domain.Booking) {
	user, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		s.logger.Error("failed to get user for booking notification",
			logger.String("user_id", b.UserID),
		)
		return
	}

	s.notifier.NotifyBookingCreated(ctx, user, b)
}

func (s *BookingService) notifyArchived(ctx context.Context, records []*domain.ArchiveRecord) {
	for _, rec := range records {
		user, err := s.userRepo.GetByID(ctx, rec.UserID)
		if err != nil {
			s.logger.Error("failed to get user for archive notification",
				logger.String("user_id", rec.UserID),
			)
			continue
		}

		switch rec.Status {
		case domain.ArchiveStatusCancelled:
			s.notifier.NotifyBookingCancelled(ctx, user, rec)
		case domain.ArchiveStatusCompleted:
			s.notifier.NotifyBookingCompleted(ctx, user, rec)
		}
	}
}

func validateBookingInput(in domain.CreateBookingInput) error {
	switch {
	case in.RoomID == "":
		return fmt.Errorf("%w: room_id is required", domain.ErrValidation)
	case strings.TrimSpace(in.GuestName) == "":
		return fmt.Errorf("%w: guest name is required", domain.ErrValidation)
	case in.GuestAge < 0:
		return fmt.Errorf("%w: age must not be negative", domain.ErrValidation)
	case in.CheckIn.IsZero() || in.CheckOut.IsZero():
		return fmt.Errorf("%w: check-in and check-out dates are required", domain.ErrValidation)
	case domain.DateOf(in.CheckOut).Before(domain.DateOf(in.CheckIn)):
		return fmt.Errorf("%w: check-out must not be before check-in", domain.ErrValidation)
	}
	return nil
}
