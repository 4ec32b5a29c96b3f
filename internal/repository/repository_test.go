package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"
)

// sqlDB runs the retry methods once against a plain *sql.DB.
type sqlDB struct {
	*sql.DB
}

func (d sqlDB) ExecWithRetry(ctx context.Context, _ retry.Strategy, query string, args ...interface{}) (sql.Result, error) {
	return d.ExecContext(ctx, query, args...)
}

func (d sqlDB) QueryWithRetry(ctx context.Context, _ retry.Strategy, query string, args ...interface{}) (*sql.Rows, error) {
	return d.QueryContext(ctx, query, args...)
}

func (d sqlDB) QueryRowWithRetry(ctx context.Context, _ retry.Strategy, query string, args ...interface{}) (*sql.Row, error) {
	return d.QueryRowContext(ctx, query, args...), nil
}

func newTestDB(t *testing.T) (DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return sqlDB{db}, mock
}

func q(s string) string {
	return regexp.QuoteMeta(s)
}

var (
	roomCols    = []string{"id", "seller_id", "hotel_name", "location", "room_type", "images", "price", "available", "created_at", "updated_at"}
	bookingCols = []string{"id", "user_id", "room_id", "seller_id", "guest_name", "guest_age", "guest_gender",
		"check_in", "check_out", "hotel_name", "room_type", "location", "price", "image_url", "created_at"}
	createdAt = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func roomRow(available bool) *sqlmock.Rows {
	return sqlmock.NewRows(roomCols).AddRow(
		"r1", "s1", "Sea View", "Batumi", "double", "{https://img/1.jpg,https://img/2.jpg}",
		"120.50", available, createdAt, createdAt,
	)
}

func addBooking(rows *sqlmock.Rows, id, userID, checkIn, checkOut string) *sqlmock.Rows {
	return rows.AddRow(
		id, userID, "r1", "s1", "Alice", 30, "female",
		date(checkIn), date(checkOut), "Sea View", "double", "Batumi", "120.50", "https://img/1.jpg", createdAt,
	)
}

func newBooking(id, checkIn, checkOut string) *domain.Booking {
	return &domain.Booking{
		ID: id, UserID: "u2", RoomID: "r1", SellerID: "s1",
		GuestName: "Bob", GuestAge: 40, GuestGender: "male",
		CheckIn: date(checkIn), CheckOut: date(checkOut),
		HotelName: "Sea View", RoomType: "double", Location: "Batumi",
		Price: decimal.RequireFromString("120.50"), ImageURL: "https://img/1.jpg", CreatedAt: createdAt,
	}
}

func TestUserRepository_Create_EmailTaken(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec(q(`INSERT INTO users`)).WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleCustomer})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepo(db)
	chatID := int64(42)

	mock.ExpectQuery(q(`FROM users WHERE email = $1`)).WithArgs("a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "image_url", "telegram_chat_id", "created_at", "updated_at"}).
			AddRow("u1", "Alice", "a@b.com", "hash", "SELLER", "", chatID, createdAt, createdAt))

	u, err := repo.GetByEmail(context.Background(), "a@b.com")

	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, domain.RoleSeller, u.Role)
	require.NotNil(t, u.TelegramChatID)
	assert.Equal(t, chatID, *u.TelegramChatID)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(q(`FROM users WHERE id = $1`)).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec(q(`UPDATE users`)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &domain.User{ID: "missing"})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRoomRepository_GetByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepo(db)

	mock.ExpectQuery(q(`FROM rooms WHERE id = $1`)).WithArgs("r1").WillReturnRows(roomRow(true))

	rm, err := repo.GetByID(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, rm.Images)
	assert.True(t, decimal.RequireFromString("120.5").Equal(rm.Price))
	assert.True(t, rm.Available)
}

func TestRoomRepository_Delete(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`SELECT id FROM rooms WHERE id = $1 FOR UPDATE`)).WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r1"))
	mock.ExpectQuery(q(`SELECT EXISTS (SELECT 1 FROM bookings WHERE room_id = $1)`)).WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(q(`DELETE FROM rooms WHERE id = $1`)).WithArgs("r1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "r1"))
}

func TestRoomRepository_Delete_HasBookings(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`FOR UPDATE`)).WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r1"))
	mock.ExpectQuery(q(`SELECT EXISTS`)).WithArgs("r1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrRoomHasBookings)
}

func TestRoomRepository_Delete_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRoomRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`FOR UPDATE`)).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingRepository_Book(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`FROM rooms WHERE id = $1 FOR UPDATE`)).WithArgs("r1").WillReturnRows(roomRow(true))
	mock.ExpectQuery(q(`FROM bookings WHERE room_id = $1 AND check_in <= $3 AND check_out >= $2`)).
		WithArgs("r1", date("2025-01-13"), date("2025-01-15")).
		WillReturnRows(sqlmock.NewRows(bookingCols))
	mock.ExpectExec(q(`INSERT INTO bookings`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var seen *domain.Room
	b, err := repo.Book(context.Background(), "r1", date("2025-01-13"), date("2025-01-15"),
		func(room *domain.Room, live []*domain.Booking) (*domain.Booking, error) {
			seen = room
			assert.Empty(t, live)
			return newBooking("b2", "2025-01-13", "2025-01-15"), nil
		})

	require.NoError(t, err)
	assert.Equal(t, "b2", b.ID)
	require.NotNil(t, seen)
	assert.Equal(t, "r1", seen.ID)
}

func TestBookingRepository_Book_DecisionRejects(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`FOR UPDATE`)).WithArgs("r1").WillReturnRows(roomRow(true))
	mock.ExpectQuery(q(`FROM bookings WHERE room_id = $1`)).
		WillReturnRows(addBooking(sqlmock.NewRows(bookingCols), "b1", "u1", "2025-01-10", "2025-01-12"))
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), "r1", date("2025-01-12"), date("2025-01-14"),
		func(room *domain.Room, live []*domain.Booking) (*domain.Booking, error) {
			require.Len(t, live, 1)
			assert.Equal(t, date("2025-01-12"), live[0].CheckOut)
			return nil, domain.ErrDatesConflict
		})

	assert.ErrorIs(t, err, domain.ErrDatesConflict)
}

func TestBookingRepository_Book_RoomNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`FOR UPDATE`)).WithArgs("missing").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Book(context.Background(), "missing", date("2025-01-12"), date("2025-01-14"),
		func(*domain.Room, []*domain.Booking) (*domain.Booking, error) {
			t.Fatal("decide must not run for a missing room")
			return nil, nil
		})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestBookingRepository_MoveToArchive(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepo(db)
	rec := domain.NewArchiveRecord(newBooking("b1", "2025-01-10", "2025-01-12"), domain.ArchiveStatusCompleted, "", createdAt)

	mock.ExpectBegin()
	mock.ExpectExec(q(`INSERT INTO booking_archive`)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(`DELETE FROM bookings WHERE id = $1`)).WithArgs("b1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.MoveToArchive(context.Background(), rec))
}

func TestBookingRepository_MoveToArchive_AlreadyGone(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepo(db)
	rec := domain.NewArchiveRecord(newBooking("b1", "2025-01-10", "2025-01-12"), domain.ArchiveStatusCancelled, "", createdAt)

	mock.ExpectBegin()
	mock.ExpectExec(q(`ON CONFLICT (id) DO NOTHING`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q(`DELETE FROM bookings`)).WithArgs("b1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.MoveToArchive(context.Background(), rec)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_MoveToArchive_Deadlock(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepo(db)
	rec := domain.NewArchiveRecord(newBooking("b1", "2025-01-10", "2025-01-12"), domain.ArchiveStatusCompleted, "", createdAt)

	mock.ExpectBegin()
	mock.ExpectExec(q(`INSERT INTO booking_archive`)).WillReturnError(&pq.Error{Code: "40P01"})
	mock.ExpectRollback()

	err := repo.MoveToArchive(context.Background(), rec)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestBookingRepository_ListExpired(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepo(db)

	rows := sqlmock.NewRows(bookingCols)
	addBooking(rows, "b1", "u1", "2025-01-01", "2025-01-03")
	addBooking(rows, "b2", "u2", "2025-01-02", "2025-01-04")
	mock.ExpectQuery(q(`WHERE check_out < $1`)).WithArgs(date("2025-01-05")).WillReturnRows(rows)

	res, err := repo.ListExpired(context.Background(), time.Date(2025, 1, 5, 3, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "b1", res[0].ID)
	assert.Equal(t, date("2025-01-04"), res[1].CheckOut)
}

func TestBookingRepository_ListBySeller(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepo(db)

	cols := append(append([]string{}, bookingCols...), "room_image")
	mock.ExpectQuery(q(`LEFT JOIN rooms r ON r.id = b.room_id`)).WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"b1", "u1", "r1", "s1", "Alice", 30, "female",
			date("2025-01-10"), date("2025-01-12"), "Sea View", "double", "Batumi", "120.50", "https://img/1.jpg", createdAt,
			"https://img/cover.jpg",
		))

	res, err := repo.ListBySeller(context.Background(), "s1")

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "https://img/cover.jpg", res[0].RoomImage)
	assert.Equal(t, "Alice", res[0].GuestName)
}

func TestArchiveRepository_ListByUser(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewArchiveRepo(db)

	cols := append(append([]string{}, bookingCols...), "status", "archived_at")
	mock.ExpectQuery(q(`FROM booking_archive`)).WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			"b1", "u1", "r1", "s1", "Alice", 30, "female",
			date("2025-01-10"), date("2025-01-12"), "Sea View", "double", "Batumi", "120.50", "https://img/1.jpg", createdAt,
			"COMPLETED", createdAt,
		))

	res, err := repo.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, domain.ArchiveStatusCompleted, res[0].Status)
	assert.Equal(t, "b1", res[0].ID)
}

func TestStoreErr(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{"deadline", context.DeadlineExceeded, true},
		{"connection exception", &pq.Error{Code: "08006"}, true},
		{"serialization failure", &pq.Error{Code: "40001"}, true},
		{"unique violation", &pq.Error{Code: "23505"}, false},
		{"plain", errors.New("syntax error"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := storeErr("op", tc.err)

			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.unavailable, errors.Is(err, domain.ErrStoreUnavailable))
		})
	}
}
