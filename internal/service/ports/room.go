package ports

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type RoomRepo interface {
	Create(ctx context.Context, r *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Update(ctx context.Context, r *domain.Room) error
	Delete(ctx context.Context, id string) error
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, img domain.ImageFile) (domain.UploadedImage, error)
	Delete(ctx context.Context, publicID string) error
}
