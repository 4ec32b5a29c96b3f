package repository

import (
	"context"

	"github.com/stpnv0/HotelBooker/internal/domain"
)

// ArchiveRepository reads terminal booking records. Writes go through
// BookingRepository.MoveToArchive only.
type ArchiveRepository struct {
	base
}

func NewArchiveRepo(db DB, opts ...Option) *ArchiveRepository {
	return &ArchiveRepository{base: newBase(db, opts...)}
}

func (r *ArchiveRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ArchiveRecord, error) {
	return r.list(ctx, `SELECT `+bookingColumns+`, status, archived_at
		FROM booking_archive
		WHERE user_id = $1
		ORDER BY archived_at DESC`, userID)
}

func (r *ArchiveRepository) ListBySeller(ctx context.Context, sellerID string) ([]*domain.ArchiveRecord, error) {
	return r.list(ctx, `SELECT `+bookingColumns+`, status, archived_at
		FROM booking_archive
		WHERE seller_id = $1
		ORDER BY archived_at DESC`, sellerID)
}

func (r *ArchiveRepository) list(ctx context.Context, query, ownerID string) ([]*domain.ArchiveRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, ownerID)
	if err != nil {
		return nil, storeErr("list archive", err)
	}
	defer rows.Close()

	res := make([]*domain.ArchiveRecord, 0)
	for rows.Next() {
		var rec domain.ArchiveRecord
		if err = rows.Scan(append(bookingDest(&rec.Booking), &rec.Status, &rec.ArchivedAt)...); err != nil {
			return nil, storeErr("scan archive record", err)
		}
		normalizeDates(&rec.Booking)
		res = append(res, &rec)
	}

	if err = rows.Err(); err != nil {
		return nil, storeErr("iterate archive", err)
	}
	return res, nil
}
