package services

import (
	"fmt"

	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/reports"
	"backend/internal/utils"
)

type BookingService struct {
	Bookings  repositories.BookingRepository
	Rates     repositories.RateRepository
	Trips     repositories.TripRepository
	RequestID string
}

type BookingRequest struct {
	UserID        int64  `json:"user_id"`
	TripID        int64  `json:"trip_id"`
	StopID        int64  `json:"stop_id"`
	PaymentMethod string `json:"payment_method"`
}

// Quote returns the rate a booking to the stop would be priced at.
func (s BookingService) Quote(stopID int64) (models.Rate, error) {
	if stopID <= 0 {
		return models.Rate{}, domain.ValidationError{Field: "stop_id", Msg: "must be positive"}
	}
	return s.Rates.GetByStop(stopID)
}

// Create prices the booking from the stop's rate and inserts it. The trip
// date is taken from the trip itself; a free payment method zeroes the cost.
func (s BookingService) Create(req BookingRequest) (models.Booking, error) {
	if req.UserID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "user_id", Msg: "must be positive"}
	}
	if req.TripID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "trip_id", Msg: "must be positive"}
	}
	if req.StopID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "stop_id", Msg: "must be positive"}
	}
	method := utils.TrimOrEmpty(req.PaymentMethod)
	if method == "" {
		return models.Booking{}, domain.ValidationError{Field: "payment_method", Msg: "required"}
	}

	trip, err := s.Trips.GetByID(req.TripID)
	if err != nil {
		return models.Booking{}, err
	}
	rate, err := s.Rates.GetByStop(req.StopID)
	if err != nil {
		return models.Booking{}, err
	}

	b := models.Booking{
		UserID:        req.UserID,
		TripID:        trip.ID,
		StopID:        req.StopID,
		TripDate:      trip.TripDate,
		Cost:          rate.Cost,
		DistanceKM:    rate.DistanceKM,
		PaymentMethod: method,
	}
	if reports.IsFree(method) {
		b.Cost = 0
	}

	id, err := s.Bookings.Create(b)
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "booking insert failed", Err: err}
	}
	b.ID = id

	utils.LogEvent(s.RequestID, "booking", "create", fmt.Sprintf("id=%d trip_id=%d user_id=%d", id, b.TripID, b.UserID))
	return b, nil
}

func (s BookingService) Cancel(id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	if err := s.Bookings.Cancel(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "cancel", fmt.Sprintf("id=%d", id))
	return nil
}

func (s BookingService) ListForUser(userID int64) ([]models.Booking, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "must be positive"}
	}
	return s.Bookings.ListByUser(userID)
}
