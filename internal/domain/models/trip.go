package models

// TimeSlot is a fixed departure time for shuttles.
type TimeSlot struct {
	ID        int64  `json:"id"`
	StartTime string `json:"start_time"` // HH:MM:SS
}

// Trip is one scheduled shuttle run on a date and time slot.
type Trip struct {
	ID         int64    `json:"id"`
	TripDate   string   `json:"trip_date"` // YYYY-MM-DD
	TimeSlotID int64    `json:"time_slot_id"`
	StartTime  string   `json:"start_time"`
	DriverID   int64    `json:"driver_id"`
	DriverName string   `json:"driver_name"`
	Route      []string `json:"route"` // ordered stop names
}

// ManifestPassenger is one non-cancelled booking on a trip, as printed on
// the driver manifest.
type ManifestPassenger struct {
	Name          string `json:"name"`
	StudentNumber int64  `json:"student_number"`
	StopName      string `json:"stop_name"`
	PaymentMethod string `json:"payment_method"`
}
