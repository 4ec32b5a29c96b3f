package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Room struct {
	ID        string          `json:"id"`
	SellerID  string          `json:"seller_id"`
	HotelName string          `json:"hotel_name"`
	Location  string          `json:"location"`
	RoomType  string          `json:"room_type"`
	Images    []string        `json:"images"`
	Price     decimal.Decimal `json:"price"`
	Available bool            `json:"available"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CoverImage is the first image of the room or "" when it has none.
func (r *Room) CoverImage() string {
	if len(r.Images) == 0 {
		return ""
	}
	return r.Images[0]
}

// RoomInput carries the seller-editable fields. A nil Available keeps the current flag
// on update; Images replace the current list only when non-empty.
type RoomInput struct {
	HotelName string
	Location  string
	RoomType  string
	Price     decimal.Decimal
	Available *bool
	Images    []ImageFile
}

type ImageFile struct {
	Filename string
	Data     []byte
}

type UploadedImage struct {
	URL      string
	PublicID string
}
