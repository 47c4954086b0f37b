package models

// Rate prices a ride to a stop: the fare charged and the distance billed.
type Rate struct {
	ID         int64   `json:"id"`
	StopID     int64   `json:"stop_id"`
	Cost       float64 `json:"cost"`
	DistanceKM float64 `json:"distance_km"`
}
