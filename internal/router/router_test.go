package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{}

func ok(c *ginext.Context) { c.Status(http.StatusOK) }

func (stubHandler) Register(c *ginext.Context)             { ok(c) }
func (stubHandler) Login(c *ginext.Context)                { ok(c) }
func (stubHandler) Logout(c *ginext.Context)               { ok(c) }
func (stubHandler) GetProfile(c *ginext.Context)           { ok(c) }
func (stubHandler) UpdateProfile(c *ginext.Context)        { ok(c) }
func (stubHandler) BecomeSeller(c *ginext.Context)         { ok(c) }
func (stubHandler) AddRoom(c *ginext.Context)              { ok(c) }
func (stubHandler) UpdateRoom(c *ginext.Context)           { ok(c) }
func (stubHandler) DeleteRoom(c *ginext.Context)           { ok(c) }
func (stubHandler) GetRoom(c *ginext.Context)              { ok(c) }
func (stubHandler) ListMyRooms(c *ginext.Context)          { ok(c) }
func (stubHandler) ListAllRooms(c *ginext.Context)         { ok(c) }
func (stubHandler) CreateBooking(c *ginext.Context)        { ok(c) }
func (stubHandler) ListBookings(c *ginext.Context)         { ok(c) }
func (stubHandler) CancelBooking(c *ginext.Context)        { ok(c) }
func (stubHandler) ListArchivedBookings(c *ginext.Context) { ok(c) }
func (stubHandler) ListSellerBookings(c *ginext.Context)   { ok(c) }
func (stubHandler) SellerBookingHistory(c *ginext.Context) { ok(c) }

func denyAll(c *ginext.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func TestInitRouter_PublicAndProtected(t *testing.T) {
	r := InitRouter("test", stubHandler{}, denyAll)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodPost, "/api/auth/register", http.StatusOK},
		{http.MethodPost, "/api/auth/login", http.StatusOK},
		{http.MethodPost, "/api/auth/logout", http.StatusOK},
		{http.MethodGet, "/api/all-rooms", http.StatusOK},
		{http.MethodGet, "/api/rooms/r1", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},

		{http.MethodGet, "/api/auth/profile", http.StatusUnauthorized},
		{http.MethodPost, "/api/auth/become-seller", http.StatusUnauthorized},
		{http.MethodPost, "/api/rooms", http.StatusUnauthorized},
		{http.MethodGet, "/api/rooms", http.StatusUnauthorized},
		{http.MethodDelete, "/api/rooms/r1", http.StatusUnauthorized},
		{http.MethodPost, "/api/bookings", http.StatusUnauthorized},
		{http.MethodDelete, "/api/bookings/b1", http.StatusUnauthorized},
		{http.MethodGet, "/api/bookings/archive", http.StatusUnauthorized},
		{http.MethodGet, "/api/seller/bookings/history", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
