package models

// Stop is a shuttle pickup/dropoff point on campus routes.
type Stop struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Zone   string `json:"zone"`
	Active bool   `json:"active"`
}
