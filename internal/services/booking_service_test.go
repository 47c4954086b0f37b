package services

import (
	"testing"

	"backend/internal/domain"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func bookingServiceWithDB(t *testing.T) (BookingService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := BookingService{
		Bookings: repositories.BookingRepository{DB: db},
		Rates:    repositories.RateRepository{DB: db},
		Trips:    repositories.TripRepository{DB: db},
	}
	return svc, mock, func() { db.Close() }
}

func tripColumns() []string {
	return []string{"id", "trip_date", "time_slot_id", "start_time", "driver_id", "driver_name", "route"}
}

func TestBookingServiceCreatePricesFromRate(t *testing.T) {
	svc, mock, done := bookingServiceWithDB(t)
	defer done()

	mock.ExpectQuery("FROM trips t").
		WillReturnRows(sqlmock.NewRows(tripColumns()).
			AddRow(9, "2024-07-01", 2, "08:00:00", 4, "Driver D", "Gate A,Res Hall"))
	mock.ExpectQuery("FROM rates").
		WillReturnRows(sqlmock.NewRows([]string{"id", "stop_id", "cost", "distance_km"}).
			AddRow(1, 3, 25.0, 4.0))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(7), int64(9), int64(3), "2024-07-01", 25.0, 4.0, "card").
		WillReturnResult(sqlmock.NewResult(11, 1))

	b, err := svc.Create(BookingRequest{UserID: 7, TripID: 9, StopID: 3, PaymentMethod: "card"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if b.ID != 11 || b.Cost != 25 || b.DistanceKM != 4 || b.TripDate != "2024-07-01" {
		t.Fatalf("booking not priced from rate/trip: %+v", b)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceCreateFreeZeroesCost(t *testing.T) {
	svc, mock, done := bookingServiceWithDB(t)
	defer done()

	mock.ExpectQuery("FROM trips t").
		WillReturnRows(sqlmock.NewRows(tripColumns()).
			AddRow(9, "2024-07-01", 2, "08:00:00", 4, "Driver D", ""))
	mock.ExpectQuery("FROM rates").
		WillReturnRows(sqlmock.NewRows([]string{"id", "stop_id", "cost", "distance_km"}).
			AddRow(1, 3, 25.0, 4.0))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(int64(7), int64(9), int64(3), "2024-07-01", 0.0, 4.0, "free").
		WillReturnResult(sqlmock.NewResult(12, 1))

	b, err := svc.Create(BookingRequest{UserID: 7, TripID: 9, StopID: 3, PaymentMethod: "free"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if b.Cost != 0 {
		t.Fatalf("free booking must cost 0, got %v", b.Cost)
	}
	if b.DistanceKM != 4 {
		t.Fatalf("distance should still come from the rate, got %v", b.DistanceKM)
	}
}

func TestBookingServiceCreateValidation(t *testing.T) {
	svc, _, done := bookingServiceWithDB(t)
	defer done()

	_, err := svc.Create(BookingRequest{UserID: 7, TripID: 9, StopID: 3})
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing payment method, got %v", err)
	}
}

func TestBookingServiceCancelNotFound(t *testing.T) {
	svc, mock, done := bookingServiceWithDB(t)
	defer done()

	mock.ExpectExec("UPDATE bookings SET cancelled").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Cancel(99)
	if err == nil || !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
