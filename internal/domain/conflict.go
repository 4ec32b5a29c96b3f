package domain

import "time"

// Overlaps reports whether b intersects [checkIn, checkOut]. Both ends are inclusive,
// so a check-out and a check-in on the same day conflict.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !b.CheckIn.After(checkOut) && !b.CheckOut.Before(checkIn)
}

// Conflicts returns the live bookings that overlap the requested stay.
func Conflicts(live []*Booking, checkIn, checkOut time.Time) []*Booking {
	var res []*Booking
	for _, b := range live {
		if b.Overlaps(checkIn, checkOut) {
			res = append(res, b)
		}
	}
	return res
}
