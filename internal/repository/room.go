package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/stpnv0/HotelBooker/internal/domain"
)

const roomColumns = `id, seller_id, hotel_name, location, room_type, images, price, available, created_at, updated_at`

type RoomRepository struct {
	base
}

func NewRoomRepo(db DB, opts ...Option) *RoomRepository {
	return &RoomRepository{base: newBase(db, opts...)}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRoom(s scanner) (*domain.Room, error) {
	var rm domain.Room
	if err := s.Scan(
		&rm.ID, &rm.SellerID, &rm.HotelName, &rm.Location, &rm.RoomType,
		pq.Array(&rm.Images), &rm.Price, &rm.Available, &rm.CreatedAt, &rm.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *RoomRepository) Create(ctx context.Context, rm *domain.Room) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `INSERT INTO rooms (` + roomColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		rm.ID, rm.SellerID, rm.HotelName, rm.Location, rm.RoomType,
		pq.Array(rm.Images), rm.Price, rm.Available, rm.CreatedAt, rm.UpdatedAt,
	)
	if err != nil {
		return storeErr("insert room", err)
	}

	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	if err != nil {
		return nil, storeErr("get room", err)
	}

	rm, err := scanRoom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, storeErr("scan room", err)
	}

	return rm, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *domain.Room) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `UPDATE rooms
			  SET hotel_name = $2, location = $3, room_type = $4, images = $5,
			      price = $6, available = $7, updated_at = $8
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		rm.ID, rm.HotelName, rm.Location, rm.RoomType,
		pq.Array(rm.Images), rm.Price, rm.Available, rm.UpdatedAt,
	)
	if err != nil {
		return storeErr("update room", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return storeErr("room rows affected", err)
	}
	if rows == 0 {
		return domain.ErrRoomNotFound
	}

	return nil
}

// Delete removes a room unless it still has live bookings. The room row is locked
// so a concurrent booking cannot slip in between the check and the delete.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin tx", err)
	}
	defer tx.Rollback()

	var locked string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrRoomNotFound
		}
		return storeErr("lock room", err)
	}

	var hasBookings bool
	if err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE room_id = $1)`, id,
	).Scan(&hasBookings); err != nil {
		return storeErr("check room bookings", err)
	}
	if hasBookings {
		return domain.ErrRoomHasBookings
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id); err != nil {
		return storeErr("delete room", err)
	}

	if err = tx.Commit(); err != nil {
		return storeErr("commit", err)
	}
	return nil
}

func (r *RoomRepository) ListBySeller(ctx context.Context, sellerID string) ([]*domain.Room, error) {
	return r.list(ctx, `SELECT `+roomColumns+` FROM rooms WHERE seller_id = $1 ORDER BY created_at DESC`, sellerID)
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	return r.list(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY created_at DESC`)
}

func (r *RoomRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Room, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, storeErr("list rooms", err)
	}
	defer rows.Close()

	res := make([]*domain.Room, 0)
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, storeErr("scan room", err)
		}
		res = append(res, rm)
	}

	if err = rows.Err(); err != nil {
		return nil, storeErr("iterate rooms", err)
	}
	return res, nil
}
