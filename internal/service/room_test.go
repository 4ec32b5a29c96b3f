package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRoomService(t *testing.T) (*RoomService, *mocks.MockRoomRepo, *mocks.MockUserRepo, *mocks.MockImageUploader) {
	t.Helper()
	repo := mocks.NewMockRoomRepo(t)
	users := mocks.NewMockUserRepo(t)
	uploader := mocks.NewMockImageUploader(t)
	return NewRoomService(repo, users, uploader, newTestLogger(t)), repo, users, uploader
}

func roomInput(images ...domain.ImageFile) domain.RoomInput {
	return domain.RoomInput{
		HotelName: "Sea View",
		Location:  "Batumi",
		RoomType:  "double",
		Price:     decimal.RequireFromString("99.90"),
		Images:    images,
	}
}

func TestRoomService_AddRoom_Success(t *testing.T) {
	svc, repo, users, uploader := newRoomService(t)
	img1 := domain.ImageFile{Filename: "1.jpg", Data: []byte("1")}
	img2 := domain.ImageFile{Filename: "2.jpg", Data: []byte("2")}

	users.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.User{ID: "s1", Role: domain.RoleSeller}, nil)
	uploader.EXPECT().Upload(mock.Anything, img1).Return(domain.UploadedImage{URL: "https://img/1.jpg", PublicID: "p1"}, nil)
	uploader.EXPECT().Upload(mock.Anything, img2).Return(domain.UploadedImage{URL: "https://img/2.jpg", PublicID: "p2"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	in := roomInput(img1, img2)
	on := true
	in.Available = &on

	room, err := svc.AddRoom(context.Background(), "s1", in)

	require.NoError(t, err)
	assert.NotEmpty(t, room.ID)
	assert.Equal(t, "s1", room.SellerID)
	assert.True(t, room.Available)
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, room.Images)
	assert.Equal(t, "https://img/1.jpg", room.CoverImage())
}

func TestRoomService_AddRoom_UnavailableByDefault(t *testing.T) {
	svc, repo, users, _ := newRoomService(t)

	users.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.User{ID: "s1", Role: domain.RoleSeller}, nil)
	repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return !r.Available
	})).Return(nil)

	room, err := svc.AddRoom(context.Background(), "s1", roomInput())

	require.NoError(t, err)
	assert.False(t, room.Available)
	assert.Empty(t, room.Images)
}

func TestRoomService_AddRoom_NotSeller(t *testing.T) {
	svc, _, users, _ := newRoomService(t)

	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleCustomer}, nil)

	_, err := svc.AddRoom(context.Background(), "u1", roomInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRoomService_AddRoom_Validation(t *testing.T) {
	svc, _, users, _ := newRoomService(t)
	in := roomInput()
	in.Price = decimal.NewFromInt(-1)

	users.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.User{ID: "s1", Role: domain.RoleSeller}, nil)

	_, err := svc.AddRoom(context.Background(), "s1", in)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRoomService_AddRoom_UploadFailureDiscardsEarlierImages(t *testing.T) {
	svc, _, users, uploader := newRoomService(t)
	img1 := domain.ImageFile{Filename: "1.jpg"}
	img2 := domain.ImageFile{Filename: "2.jpg"}

	users.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.User{ID: "s1", Role: domain.RoleSeller}, nil)
	uploader.EXPECT().Upload(mock.Anything, img1).Return(domain.UploadedImage{URL: "u1", PublicID: "p1"}, nil)
	uploader.EXPECT().Upload(mock.Anything, img2).Return(domain.UploadedImage{}, errors.New("quota exceeded"))
	uploader.EXPECT().Delete(mock.Anything, "p1").Return(nil)

	_, err := svc.AddRoom(context.Background(), "s1", roomInput(img1, img2))

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestRoomService_AddRoom_CreateFailureDiscardsImages(t *testing.T) {
	svc, repo, users, uploader := newRoomService(t)
	img := domain.ImageFile{Filename: "1.jpg"}

	users.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.User{ID: "s1", Role: domain.RoleSeller}, nil)
	uploader.EXPECT().Upload(mock.Anything, img).Return(domain.UploadedImage{URL: "u1", PublicID: "p1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrStoreUnavailable)
	uploader.EXPECT().Delete(mock.Anything, "p1").Return(errors.New("gone"))

	_, err := svc.AddRoom(context.Background(), "s1", roomInput(img))

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestRoomService_UpdateRoom_KeepsImagesAndAvailability(t *testing.T) {
	svc, repo, _, _ := newRoomService(t)
	room := &domain.Room{ID: "r1", SellerID: "s1", Images: []string{"https://img/old.jpg"}, Available: false}

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	repo.EXPECT().Update(mock.Anything, room).Return(nil)

	got, err := svc.UpdateRoom(context.Background(), "r1", "s1", roomInput())

	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/old.jpg"}, got.Images)
	assert.False(t, got.Available)
	assert.Equal(t, "Sea View", got.HotelName)
}

func TestRoomService_UpdateRoom_ReplacesImagesAndToggles(t *testing.T) {
	svc, repo, _, uploader := newRoomService(t)
	room := &domain.Room{ID: "r1", SellerID: "s1", Images: []string{"https://img/old.jpg"}, Available: true}
	img := domain.ImageFile{Filename: "new.jpg"}
	off := false
	in := roomInput(img)
	in.Available = &off

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(room, nil)
	uploader.EXPECT().Upload(mock.Anything, img).Return(domain.UploadedImage{URL: "https://img/new.jpg", PublicID: "new"}, nil)
	repo.EXPECT().Update(mock.Anything, room).Return(nil)

	got, err := svc.UpdateRoom(context.Background(), "r1", "s1", in)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/new.jpg"}, got.Images)
	assert.False(t, got.Available)
}

func TestRoomService_UpdateRoom_OtherSeller(t *testing.T) {
	svc, repo, _, _ := newRoomService(t)

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", SellerID: "s1"}, nil)

	_, err := svc.UpdateRoom(context.Background(), "r1", "s2", roomInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRoomService_DeleteRoom(t *testing.T) {
	svc, repo, _, _ := newRoomService(t)

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", SellerID: "s1"}, nil)
	repo.EXPECT().Delete(mock.Anything, "r1").Return(nil)

	require.NoError(t, svc.DeleteRoom(context.Background(), "r1", "s1"))
}

func TestRoomService_DeleteRoom_HasBookings(t *testing.T) {
	svc, repo, _, _ := newRoomService(t)

	repo.EXPECT().GetByID(mock.Anything, "r1").Return(&domain.Room{ID: "r1", SellerID: "s1"}, nil)
	repo.EXPECT().Delete(mock.Anything, "r1").Return(domain.ErrRoomHasBookings)

	err := svc.DeleteRoom(context.Background(), "r1", "s1")

	assert.ErrorIs(t, err, domain.ErrRoomHasBookings)
}

func TestRoomService_DeleteRoom_NotFound(t *testing.T) {
	svc, repo, _, _ := newRoomService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRoomNotFound)

	err := svc.DeleteRoom(context.Background(), "missing", "s1")

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestRoomService_Lists(t *testing.T) {
	svc, repo, _, _ := newRoomService(t)
	rooms := []*domain.Room{{ID: "r1", SellerID: "s1"}}

	repo.EXPECT().ListBySeller(mock.Anything, "s1").Return(rooms, nil)
	repo.EXPECT().List(mock.Anything).Return(rooms, nil)
	repo.EXPECT().GetByID(mock.Anything, "r1").Return(rooms[0], nil)

	got, err := svc.ListBySeller(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, rooms, got)

	got, err = svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rooms, got)

	room, err := svc.GetRoom(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, "r1", room.ID)
}
