package handler

import (
	"net/http"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/handler/dto"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.setTokenCookie(c, token, int(h.cookie.TTL.Seconds()))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

func (h *Handler) Logout(c *ginext.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}

func (h *Handler) setTokenCookie(c *ginext.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", "", h.cookie.Secure, true)
}

func (h *Handler) GetProfile(c *ginext.Context) {
	user, err := h.userService.GetProfile(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	var req dto.ProfileForm
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	images, err := formImages(c, "image")
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.ProfileUpdateInput{
		Name:           req.Name,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	}
	if len(images) > 0 {
		input.Image = &images[0]
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), currentUser(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) BecomeSeller(c *ginext.Context) {
	user, err := h.userService.BecomeSeller(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
