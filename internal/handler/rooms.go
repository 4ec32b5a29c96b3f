package handler

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) AddRoom(c *ginext.Context) {
	input, ok := h.roomInput(c)
	if !ok {
		return
	}

	room, err := h.roomService.AddRoom(c.Request.Context(), currentUser(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) UpdateRoom(c *ginext.Context) {
	roomID, ok := pathID(c, "room")
	if !ok {
		return
	}

	input, ok := h.roomInput(c)
	if !ok {
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), roomID, currentUser(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) DeleteRoom(c *ginext.Context) {
	roomID, ok := pathID(c, "room")
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), roomID, currentUser(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetRoom(c *ginext.Context) {
	roomID, ok := pathID(c, "room")
	if !ok {
		return
	}

	room, err := h.roomService.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) ListMyRooms(c *ginext.Context) {
	rooms, err := h.roomService.ListBySeller(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponses(rooms))
}

func (h *Handler) ListAllRooms(c *ginext.Context) {
	rooms, err := h.roomService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponses(rooms))
}

// roomInput binds the room form and its "images" files; on failure the response is written.
func (h *Handler) roomInput(c *ginext.Context) (domain.RoomInput, bool) {
	var req dto.RoomForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.RoomInput{}, false
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		h.handleError(c, fmt.Errorf("%w: invalid price %q", domain.ErrValidation, req.Price))
		return domain.RoomInput{}, false
	}

	images, err := formImages(c, "images")
	if err != nil {
		h.handleError(c, err)
		return domain.RoomInput{}, false
	}

	return domain.RoomInput{
		HotelName: req.HotelName,
		Location:  req.Location,
		RoomType:  req.RoomType,
		Price:     price,
		Available: req.Available,
		Images:    images,
	}, true
}
