package reports

// StudentRef is the joined user on a booking row. Nil when the join is
// absent (orphaned user_id).
type StudentRef struct {
	Name   string
	Number int64
}

// BookingRow is a denormalized booking as fetched from the data source:
// booking fields plus the optionally-joined student.
type BookingRow struct {
	ID            int64
	TripDate      string // YYYY-MM-DD
	Cost          float64
	DistanceKM    float64
	PaymentMethod string
	Cancelled     bool
	Student       *StudentRef
}

// TripBooking is a booking embedded in a trip row. Cancelled bookings are
// kept here; the time-slot rollup filters them itself.
type TripBooking struct {
	Cost          float64
	PaymentMethod string
	Cancelled     bool
}

// TripRow is a trip with its resolved time-slot start time and embedded
// bookings.
type TripRow struct {
	ID        int64
	TripDate  string
	StartTime string // "" when the time_slots join is absent
	Bookings  []TripBooking
}

// StudentReport is the per-student rollup: one entry per distinct display
// name appearing in non-cancelled bookings.
type StudentReport struct {
	StudentName   string  `json:"studentName"`
	TotalTrips    int     `json:"totalTrips"`
	PaidTrips     int     `json:"paidTrips"`
	FreeTrips     int     `json:"freeTrips"`
	TotalDistance float64 `json:"totalDistance"`
	TotalCost     float64 `json:"totalCost"`
}

// TimeSlotReport is the per-departure-time rollup.
type TimeSlotReport struct {
	TimeSlot      string  `json:"timeSlot"`
	TotalBookings int     `json:"totalBookings"`
	AvgOccupancy  string  `json:"avgOccupancy"` // "{n}/15"
	Revenue       float64 `json:"revenue"`
	Type          string  `json:"type"` // "free" | "paid"
}

// DateCell is one date's sub-aggregate inside a DateRangeReport.
type DateCell struct {
	TotalTrips   int     `json:"totalTrips"`
	TotalBilling float64 `json:"totalBilling"`
}

// DateRangeReport is the per-student, per-date matrix. Dates is sparse:
// only dates with at least one booking for this student appear.
type DateRangeReport struct {
	StudentName   string              `json:"studentName"`
	StudentNumber int64               `json:"studentNumber"`
	Dates         map[string]DateCell `json:"dates"`
	TotalTrips    int                 `json:"totalTrips"`
	TotalCost     float64             `json:"totalCost"`
	PaidTrips     int                 `json:"paidTrips"`
}
