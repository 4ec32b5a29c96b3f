package dto

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Password       string `json:"password" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileForm is sent as multipart (with an optional "image" file) or JSON.
type ProfileForm struct {
	Name           string `form:"name" json:"name" binding:"required"`
	Password       string `form:"password" json:"password"`
	TelegramChatID *int64 `form:"telegram_chat_id" json:"telegram_chat_id"`
}

// RoomForm is sent as multipart (with "images" files) or JSON.
type RoomForm struct {
	HotelName string `form:"hotel_name" json:"hotel_name" binding:"required"`
	Location  string `form:"location" json:"location" binding:"required"`
	RoomType  string `form:"room_type" json:"room_type" binding:"required"`
	Price     string `form:"price" json:"price" binding:"required"`
	Available *bool  `form:"available" json:"available"`
}

// CreateBookingRequest carries dates as YYYY-MM-DD.
type CreateBookingRequest struct {
	RoomID   string `json:"room_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required"`
	Age      int    `json:"age" binding:"gte=0"`
	Gender   string `json:"gender"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}
