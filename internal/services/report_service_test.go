package services

import (
	"errors"
	"testing"

	"backend/internal/domain"
	"backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func bookingColumns() []string {
	return []string{
		"id", "trip_date", "cost", "distance_traveled", "payment_method", "cancelled", "name", "student_number",
	}
}

func TestReportServiceBuildStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings b").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, "2024-07-01", 30.0, 5.0, "card", 0, "Amy", 12345).
			AddRow(2, "2024-07-01", 0.0, 2.0, "free", 0, "Amy", 12345))

	svc := ReportService{Repo: repositories.ReportRepository{DB: db}}
	res, err := svc.Build(ReportFilter{Type: ReportTypeStudent, Student: "all"})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if res.Type != ReportTypeStudent {
		t.Fatalf("wrong type %q", res.Type)
	}
	if len(res.Students) != 1 || res.Students[0].TotalTrips != 2 {
		t.Fatalf("wrong rollup: %+v", res.Students)
	}
	if len(res.Table.Columns) != 6 || len(res.Table.Rows) != 1 {
		t.Fatalf("table not attached: %+v", res.Table)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReportServiceBuildDateRangePassesBounds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings b").
		WithArgs("2024-07-01", "2024-07-31").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, "2024-07-01", 40.0, 5.0, "card", 0, "Amy", 12345))

	svc := ReportService{Repo: repositories.ReportRepository{DB: db}}
	res, err := svc.Build(ReportFilter{
		Type:     ReportTypeDateRange,
		DateFrom: "2024-07-01",
		DateTo:   "2024-07-31",
	})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(res.DateRange) != 1 || res.DateRange[0].TotalCost != 40 {
		t.Fatalf("wrong rollup: %+v", res.DateRange)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReportServiceQueryFailureShortCircuits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings b").WillReturnError(errors.New("connection refused"))

	svc := ReportService{Repo: repositories.ReportRepository{DB: db}}
	res, err := svc.Build(ReportFilter{Type: ReportTypeStudent})
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsInternal(err) {
		t.Fatalf("query failure should surface as internal error, got %v", err)
	}
	if res.Students != nil || res.Table.Rows != nil {
		t.Fatalf("partial result returned after failure: %+v", res)
	}
}

func TestReportServiceRejectsBadDateBound(t *testing.T) {
	svc := ReportService{}
	_, err := svc.Build(ReportFilter{Type: ReportTypeDateRange, DateFrom: "July 1"})
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error for malformed date, got %v", err)
	}
}

func TestReportServiceRejectsUnknownType(t *testing.T) {
	svc := ReportService{}
	_, err := svc.Build(ReportFilter{Type: "weekly"})
	if err == nil || !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
