package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	GetProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
	BecomeSeller(c *ginext.Context)

	AddRoom(c *ginext.Context)
	UpdateRoom(c *ginext.Context)
	DeleteRoom(c *ginext.Context)
	GetRoom(c *ginext.Context)
	ListMyRooms(c *ginext.Context)
	ListAllRooms(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ListArchivedBookings(c *ginext.Context)
	ListSellerBookings(c *ginext.Context)
	SellerBookingHistory(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	public := router.Group("/api")
	{
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)
		public.POST("/auth/logout", h.Logout)

		public.GET("/all-rooms", h.ListAllRooms)
		public.GET("/rooms/:id", h.GetRoom)
	}

	api := router.Group("/api")
	api.Use(auth)
	{
		// Profile
		api.GET("/auth/profile", h.GetProfile)
		api.PUT("/auth/profile", h.UpdateProfile)
		api.POST("/auth/become-seller", h.BecomeSeller)

		// Rooms
		api.POST("/rooms", h.AddRoom)
		api.GET("/rooms", h.ListMyRooms)
		api.PUT("/rooms/:id", h.UpdateRoom)
		api.DELETE("/rooms/:id", h.DeleteRoom)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.GET("/bookings/archive", h.ListArchivedBookings)

		// Seller
		api.GET("/seller/bookings", h.ListSellerBookings)
		api.GET("/seller/bookings/history", h.SellerBookingHistory)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metrics := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metrics.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
