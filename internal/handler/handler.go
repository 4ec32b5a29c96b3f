package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

const (
	maxImageSize   = 10 << 20
	maxImagesCount = 10
)

type RoomSvc interface {
	AddRoom(ctx context.Context, sellerID string, input domain.RoomInput) (*domain.Room, error)
	UpdateRoom(ctx context.Context, roomID, sellerID string, input domain.RoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, roomID, sellerID string) error
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*domain.Room, error)
	ListAll(ctx context.Context) ([]*domain.Room, error)
}

type BookingSvc interface {
	CreateBooking(ctx context.Context, userID string, input domain.CreateBookingInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID string) (*domain.ArchiveRecord, error)
	ListLive(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListArchived(ctx context.Context, userID string) ([]*domain.ArchiveRecord, error)
	ListForSeller(ctx context.Context, sellerID string) ([]*domain.SellerBooking, error)
	SellerHistory(ctx context.Context, sellerID string) ([]*domain.ArchiveRecord, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input domain.LoginInput) (string, *domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input domain.ProfileUpdateInput) (*domain.User, error)
	BecomeSeller(ctx context.Context, userID string) (*domain.User, error)
}

// CookieConfig controls the session cookie set on login.
type CookieConfig struct {
	TTL    time.Duration
	Secure bool
}

type Handler struct {
	roomService    RoomSvc
	bookingService BookingSvc
	userService    UserSvc
	cookie         CookieConfig
}

func NewHandler(roomService RoomSvc, bookingService BookingSvc, userService UserSvc, cookie CookieConfig) *Handler {
	return &Handler{
		roomService:    roomService,
		bookingService: bookingService,
		userService:    userService,
		cookie:         cookie,
	}
}

func currentUser(c *ginext.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// pathID returns the :id parameter or writes 400 when it is not a uuid.
func pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

// formImages reads the files of a multipart field. Non-multipart requests carry no images.
func formImages(c *ginext.Context, field string) ([]domain.ImageFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	headers := form.File[field]
	if len(headers) > maxImagesCount {
		return nil, fmt.Errorf("%w: at most %d images allowed", domain.ErrValidation, maxImagesCount)
	}

	images := make([]domain.ImageFile, 0, len(headers))
	for _, fh := range headers {
		img, err := readImage(fh)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func readImage(fh *multipart.FileHeader) (domain.ImageFile, error) {
	if fh.Size > maxImageSize {
		return domain.ImageFile{}, fmt.Errorf("%w: image %s is larger than %d bytes", domain.ErrValidation, fh.Filename, maxImageSize)
	}

	f, err := fh.Open()
	if err != nil {
		return domain.ImageFile{}, fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return domain.ImageFile{}, fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	if len(data) > maxImageSize {
		return domain.ImageFile{}, fmt.Errorf("%w: image %s is larger than %d bytes", domain.ErrValidation, fh.Filename, maxImageSize)
	}

	return domain.ImageFile{Filename: fh.Filename, Data: data}, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoomUnavailable):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDatesConflict),
		errors.Is(err, domain.ErrRoomHasBookings),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUploadFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "image upload failed"})

	case errors.Is(err, domain.ErrStoreUnavailable):
		c.Header("Retry-After", "1")
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "service temporarily unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
