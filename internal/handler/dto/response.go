package dto

import (
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

type RoomResponse struct {
	ID        string   `json:"id"`
	SellerID  string   `json:"seller_id"`
	HotelName string   `json:"hotel_name"`
	Location  string   `json:"location"`
	RoomType  string   `json:"room_type"`
	Images    []string `json:"images"`
	Price     string   `json:"price"`
	Available bool     `json:"available"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type BookingResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	RoomID    string `json:"room_id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	HotelName string `json:"hotel_name"`
	RoomType  string `json:"room_type"`
	Location  string `json:"location"`
	Price     string `json:"price"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}

type SellerBookingResponse struct {
	BookingResponse
	RoomImage string `json:"room_image"`
}

type ArchiveRecordResponse struct {
	BookingResponse
	Status     string `json:"status"`
	ArchivedAt string `json:"archived_at"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ImageURL       string `json:"image_url,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	images := r.Images
	if images == nil {
		images = []string{}
	}
	return RoomResponse{
		ID:        r.ID,
		SellerID:  r.SellerID,
		HotelName: r.HotelName,
		Location:  r.Location,
		RoomType:  r.RoomType,
		Images:    images,
		Price:     r.Price.StringFixed(2),
		Available: r.Available,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
		UpdatedAt: r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRoomResponses(rooms []*domain.Room) []RoomResponse {
	resp := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, ToRoomResponse(r))
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		Name:      b.GuestName,
		Age:       b.GuestAge,
		Gender:    b.GuestGender,
		CheckIn:   domain.FormatDate(b.CheckIn),
		CheckOut:  domain.FormatDate(b.CheckOut),
		HotelName: b.HotelName,
		RoomType:  b.RoomType,
		Location:  b.Location,
		Price:     b.Price.StringFixed(2),
		ImageURL:  b.ImageURL,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

func ToSellerBookingResponse(b *domain.SellerBooking) SellerBookingResponse {
	return SellerBookingResponse{
		BookingResponse: ToBookingResponse(&b.Booking),
		RoomImage:       b.RoomImage,
	}
}

func ToArchiveRecordResponse(rec *domain.ArchiveRecord) ArchiveRecordResponse {
	return ArchiveRecordResponse{
		BookingResponse: ToBookingResponse(&rec.Booking),
		Status:          string(rec.Status),
		ArchivedAt:      rec.ArchivedAt.Format(time.RFC3339),
	}
}

func ToArchiveRecordResponses(records []*domain.ArchiveRecord) []ArchiveRecordResponse {
	resp := make([]ArchiveRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, ToArchiveRecordResponse(rec))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		ImageURL:       u.ImageURL,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
