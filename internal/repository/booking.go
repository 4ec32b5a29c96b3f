package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
)

const bookingColumns = `id, user_id, room_id, seller_id, guest_name, guest_age, guest_gender,
	check_in, check_out, hotel_name, room_type, location, price, image_url, created_at`

type BookingRepository struct {
	base
}

func NewBookingRepo(db DB, opts ...Option) *BookingRepository {
	return &BookingRepository{base: newBase(db, opts...)}
}

func bookingDest(b *domain.Booking) []any {
	return []any{
		&b.ID, &b.UserID, &b.RoomID, &b.SellerID, &b.GuestName, &b.GuestAge, &b.GuestGender,
		&b.CheckIn, &b.CheckOut, &b.HotelName, &b.RoomType, &b.Location, &b.Price, &b.ImageURL, &b.CreatedAt,
	}
}

func bookingArgs(b *domain.Booking) []any {
	return []any{
		b.ID, b.UserID, b.RoomID, b.SellerID, b.GuestName, b.GuestAge, b.GuestGender,
		b.CheckIn, b.CheckOut, b.HotelName, b.RoomType, b.Location, b.Price, b.ImageURL, b.CreatedAt,
	}
}

// normalizeDates drops the zone the driver attaches to DATE columns.
func normalizeDates(b *domain.Booking) {
	b.CheckIn = domain.DateOf(b.CheckIn)
	b.CheckOut = domain.DateOf(b.CheckOut)
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	defer rows.Close()

	res := make([]*domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(bookingDest(&b)...); err != nil {
			return nil, err
		}
		normalizeDates(&b)
		res = append(res, &b)
	}
	return res, rows.Err()
}

// Book creates a booking while holding the room row lock. decide sees the room and the
// live bookings that touch [checkIn, checkOut] and returns the booking to insert.
func (r *BookingRepository) Book(
	ctx context.Context,
	roomID string,
	checkIn, checkOut time.Time,
	decide ports.BookRoomFunc,
) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeErr("begin tx", err)
	}
	defer tx.Rollback()

	// Блокируем комнату: брони одной комнаты создаются строго по очереди
	room, err := scanRoom(tx.QueryRowContext(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = $1 FOR UPDATE`, roomID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, storeErr("lock room", err)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE room_id = $1 AND check_in <= $3 AND check_out >= $2
		 ORDER BY check_in`,
		roomID, checkIn, checkOut,
	)
	if err != nil {
		return nil, storeErr("load room bookings", err)
	}
	live, err := scanBookings(rows)
	if err != nil {
		return nil, storeErr("scan room bookings", err)
	}

	b, err := decide(room, live)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	if _, err = tx.ExecContext(ctx, query, bookingArgs(b)...); err != nil {
		return nil, storeErr("insert booking", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, storeErr("commit", err)
	}
	return b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if err != nil {
		return nil, storeErr("get booking", err)
	}

	var b domain.Booking
	if err = row.Scan(bookingDest(&b)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, storeErr("scan booking", err)
	}
	normalizeDates(&b)

	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY check_in, created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, storeErr("list bookings by user", err)
	}

	res, err := scanBookings(rows)
	if err != nil {
		return nil, storeErr("scan booking", err)
	}
	return res, nil
}

func (r *BookingRepository) ListBySeller(ctx context.Context, sellerID string) ([]*domain.SellerBooking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT b.id, b.user_id, b.room_id, b.seller_id, b.guest_name, b.guest_age, b.guest_gender,
			         b.check_in, b.check_out, b.hotel_name, b.room_type, b.location, b.price, b.image_url,
			         b.created_at, COALESCE(r.images[1], '')
			  FROM bookings b
			  LEFT JOIN rooms r ON r.id = b.room_id
			  WHERE b.seller_id = $1
			  ORDER BY b.check_in, b.created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sellerID)
	if err != nil {
		return nil, storeErr("list bookings by seller", err)
	}
	defer rows.Close()

	res := make([]*domain.SellerBooking, 0)
	for rows.Next() {
		var sb domain.SellerBooking
		if err = rows.Scan(append(bookingDest(&sb.Booking), &sb.RoomImage)...); err != nil {
			return nil, storeErr("scan seller booking", err)
		}
		normalizeDates(&sb.Booking)
		res = append(res, &sb)
	}

	if err = rows.Err(); err != nil {
		return nil, storeErr("iterate seller bookings", err)
	}
	return res, nil
}

// ListExpired returns live bookings whose check-out day is before today.
func (r *BookingRepository) ListExpired(ctx context.Context, today time.Time) ([]*domain.Booking, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE check_out < $1
			  ORDER BY check_out, id`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.DateOf(today))
	if err != nil {
		return nil, storeErr("list expired bookings", err)
	}

	res, err := scanBookings(rows)
	if err != nil {
		return nil, storeErr("scan booking", err)
	}
	return res, nil
}

// MoveToArchive inserts rec into the archive and deletes the live booking in one
// transaction. The delete decides the outcome: when the booking is already gone nothing
// is committed and domain.ErrBookingNotFound is returned.
func (r *BookingRepository) MoveToArchive(ctx context.Context, rec *domain.ArchiveRecord) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer tx.Rollback()

	insert := `INSERT INTO booking_archive (` + bookingColumns + `, status, archived_at)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
			   ON CONFLICT (id) DO NOTHING`
	args := append(bookingArgs(&rec.Booking), rec.Status, rec.ArchivedAt)
	if _, err = tx.ExecContext(ctx, insert, args...); err != nil {
		return storeErr("insert archive record", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, rec.ID)
	if err != nil {
		return storeErr("delete booking", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storeErr("booking rows affected", err)
	}
	if rows == 0 {
		// бронь уже перенесена другим вызовом
		return domain.ErrBookingNotFound
	}

	if err = tx.Commit(); err != nil {
		return storeErr("commit", err)
	}
	return nil
}
