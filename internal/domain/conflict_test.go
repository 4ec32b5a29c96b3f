package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestBooking_Overlaps(t *testing.T) {
	existing := &Booking{
		CheckIn:  date(t, "2024-06-01"),
		CheckOut: date(t, "2024-06-05"),
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     bool
	}{
		{"before", "2024-05-20", "2024-05-31", false},
		{"after", "2024-06-06", "2024-06-10", false},
		{"inside", "2024-06-02", "2024-06-03", true},
		{"covers", "2024-05-30", "2024-06-07", true},
		{"tail overlap", "2024-06-04", "2024-06-08", true},
		{"check-in on check-out day", "2024-06-05", "2024-06-08", true},
		{"check-out on check-in day", "2024-05-28", "2024-06-01", true},
		{"same check-in", "2024-06-01", "2024-06-02", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := existing.Overlaps(date(t, tt.checkIn), date(t, tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConflicts_ReturnsOnlyOverlapping(t *testing.T) {
	live := []*Booking{
		{ID: "b1", CheckIn: date(t, "2024-06-01"), CheckOut: date(t, "2024-06-05")},
		{ID: "b2", CheckIn: date(t, "2024-06-10"), CheckOut: date(t, "2024-06-12")},
		{ID: "b3", CheckIn: date(t, "2024-06-07"), CheckOut: date(t, "2024-06-09")},
	}

	res := Conflicts(live, date(t, "2024-06-05"), date(t, "2024-06-08"))

	require.Len(t, res, 2)
	assert.Equal(t, "b1", res[0].ID)
	assert.Equal(t, "b3", res[1].ID)
}

func TestConflicts_Empty(t *testing.T) {
	assert.Empty(t, Conflicts(nil, date(t, "2024-06-01"), date(t, "2024-06-02")))

	live := []*Booking{
		{ID: "b1", CheckIn: date(t, "2024-06-01"), CheckOut: date(t, "2024-06-05")},
	}
	assert.Empty(t, Conflicts(live, date(t, "2024-06-06"), date(t, "2024-06-07")))
}

func TestNewArchiveRecord(t *testing.T) {
	b := &Booking{ID: "b1", UserID: "u1", ImageURL: "snapshot.jpg"}
	at := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	rec := NewArchiveRecord(b, ArchiveStatusCompleted, "", at)
	assert.Equal(t, "b1", rec.ID)
	assert.Equal(t, ArchiveStatusCompleted, rec.Status)
	assert.Equal(t, "snapshot.jpg", rec.ImageURL)
	assert.Equal(t, at, rec.ArchivedAt)

	rec = NewArchiveRecord(b, ArchiveStatusCancelled, "room.jpg", at)
	assert.Equal(t, "room.jpg", rec.ImageURL)
	assert.Equal(t, "snapshot.jpg", b.ImageURL)
}
