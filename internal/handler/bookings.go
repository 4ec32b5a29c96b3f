package handler

import (
	"net/http"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checkIn, err := domain.ParseDate(req.CheckIn)
	if err != nil {
		h.handleError(c, err)
		return
	}
	checkOut, err := domain.ParseDate(req.CheckOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), currentUser(c), domain.CreateBookingInput{
		RoomID:      req.RoomID,
		GuestName:   req.Name,
		GuestAge:    req.Age,
		GuestGender: req.Gender,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListLive(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID, ok := pathID(c, "booking")
	if !ok {
		return
	}

	rec, err := h.bookingService.CancelBooking(c.Request.Context(), currentUser(c), bookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArchiveRecordResponse(rec))
}

func (h *Handler) ListArchivedBookings(c *ginext.Context) {
	records, err := h.bookingService.ListArchived(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArchiveRecordResponses(records))
}

func (h *Handler) ListSellerBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListForSeller(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SellerBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToSellerBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SellerBookingHistory(c *ginext.Context) {
	records, err := h.bookingService.SellerHistory(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArchiveRecordResponses(records))
}
