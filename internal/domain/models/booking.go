package models

// Booking is a student's seat on a trip. Cancelled bookings stay in the
// table with cancelled=1 and are excluded from reporting.
type Booking struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	TripID        int64   `json:"trip_id"`
	StopID        int64   `json:"stop_id"`
	TripDate      string  `json:"trip_date"` // YYYY-MM-DD
	Cost          float64 `json:"cost"`
	DistanceKM    float64 `json:"distance_traveled"`
	PaymentMethod string  `json:"payment_method"`
	Cancelled     bool    `json:"cancelled"`
}
