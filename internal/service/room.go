package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/metrics"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type RoomService struct {
	repo     ports.RoomRepo
	userRepo ports.UserRepo
	uploader ports.ImageUploader
	logger   logger.Logger
}

func NewRoomService(
	repo ports.RoomRepo,
	userRepo ports.UserRepo,
	uploader ports.ImageUploader,
	logger logger.Logger,
) *RoomService {
	return &RoomService{
		repo:     repo,
		userRepo: userRepo,
		uploader: uploader,
		logger:   logger,
	}
}

func (s *RoomService) AddRoom(ctx context.Context, sellerID string, input domain.RoomInput) (*domain.Room, error) {
	seller, err := s.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("get seller: %w", err)
	}
	if seller.Role != domain.RoleSeller {
		return nil, fmt.Errorf("%w: only sellers can list rooms", domain.ErrForbidden)
	}

	if err = validateRoomInput(input); err != nil {
		return nil, err
	}

	// не указано = недоступна
	available := input.Available != nil && *input.Available

	uploaded, err := s.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	room := &domain.Room{
		ID:        uuid.New().String(),
		SellerID:  sellerID,
		HotelName: strings.TrimSpace(input.HotelName),
		Location:  strings.TrimSpace(input.Location),
		RoomType:  strings.TrimSpace(input.RoomType),
		Images:    imageURLs(uploaded),
		Price:     input.Price,
		Available: available,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err = s.repo.Create(ctx, room); err != nil {
		s.discardImages(ctx, uploaded)
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room added",
		logger.String("room_id", room.ID),
		logger.String("seller_id", sellerID),
		logger.Int("images", len(room.Images)),
	)

	return room, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, roomID, sellerID string, input domain.RoomInput) (*domain.Room, error) {
	room, err := s.ownedRoom(ctx, roomID, sellerID)
	if err != nil {
		return nil, err
	}

	if err = validateRoomInput(input); err != nil {
		return nil, err
	}

	room.HotelName = strings.TrimSpace(input.HotelName)
	room.Location = strings.TrimSpace(input.Location)
	room.RoomType = strings.TrimSpace(input.RoomType)
	room.Price = input.Price
	if input.Available != nil {
		room.Available = *input.Available
	}

	var uploaded []domain.UploadedImage
	if len(input.Images) > 0 {
		if uploaded, err = s.uploadImages(ctx, input.Images); err != nil {
			return nil, err
		}
		room.Images = imageURLs(uploaded)
	}
	room.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, room); err != nil {
		s.discardImages(ctx, uploaded)
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.logger.Info("room updated",
		logger.String("room_id", room.ID),
		logger.String("seller_id", sellerID),
	)

	return room, nil
}

// DeleteRoom refuses to delete a room that still has live bookings.
func (s *RoomService) DeleteRoom(ctx context.Context, roomID, sellerID string) error {
	if _, err := s.ownedRoom(ctx, roomID, sellerID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, roomID); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	s.logger.Info("room deleted",
		logger.String("room_id", roomID),
		logger.String("seller_id", sellerID),
	)

	return nil
}

func (s *RoomService) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	return s.repo.GetByID(ctx, roomID)
}

func (s *RoomService) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Room, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

func (s *RoomService) ListAll(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.List(ctx)
}

func (s *RoomService) ownedRoom(ctx context.Context, roomID, sellerID string) (*domain.Room, error) {
	room, err := s.repo.GetByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room.SellerID != sellerID {
		return nil, fmt.Errorf("%w: room belongs to another seller", domain.ErrForbidden)
	}
	return room, nil
}

// uploadImages uploads all images or none: on failure the ones already stored are destroyed.
func (s *RoomService) uploadImages(ctx context.Context, images []domain.ImageFile) ([]domain.UploadedImage, error) {
	uploaded := make([]domain.UploadedImage, 0, len(images))
	for _, img := range images {
		up, err := s.uploader.Upload(ctx, img)
		if err != nil {
			metrics.ImageUploads.WithLabelValues("error").Inc()
			s.discardImages(ctx, uploaded)
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrUploadFailed, img.Filename, err)
		}
		metrics.ImageUploads.WithLabelValues("ok").Inc()
		uploaded = append(uploaded, up)
	}
	return uploaded, nil
}

func (s *RoomService) discardImages(ctx context.Context, images []domain.UploadedImage) {
	ctx = context.WithoutCancel(ctx)
	for _, img := range images {
		if err := s.uploader.Delete(ctx, img.PublicID); err != nil {
			s.logger.Warn("failed to discard uploaded image",
				logger.String("public_id", img.PublicID),
				logger.String("error", err.Error()),
			)
		}
	}
}

func imageURLs(images []domain.UploadedImage) []string {
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}
	return urls
}

func validateRoomInput(in domain.RoomInput) error {
	switch {
	case strings.TrimSpace(in.HotelName) == "":
		return fmt.Errorf("%w: hotel name is required", domain.ErrValidation)
	case strings.TrimSpace(in.Location) == "":
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	case strings.TrimSpace(in.RoomType) == "":
		return fmt.Errorf("%w: room type is required", domain.ErrValidation)
	case in.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	return nil
}
