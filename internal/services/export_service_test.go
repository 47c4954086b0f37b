package services

import (
	"strings"
	"testing"

	"backend/internal/repositories"
	"backend/internal/reports"

	"github.com/DATA-DOG/go-sqlmock"
)

func exportServiceWithBookings(t *testing.T) (ExportService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := ExportService{Reports: ReportService{Repo: repositories.ReportRepository{DB: db}}}
	return svc, mock, func() { db.Close() }
}

func TestExportCSVStudentFilename(t *testing.T) {
	svc, mock, done := exportServiceWithBookings(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, "2024-07-01", 30.0, 5.0, "card", 0, "Amy", 12345))

	doc, err := svc.ExportCSV(ReportFilter{Type: ReportTypeStudent}, "")
	if err != nil {
		t.Fatalf("ExportCSV error: %v", err)
	}
	if doc.Filename != reports.FilenameStudentCSV {
		t.Fatalf("wrong filename %q", doc.Filename)
	}
	if doc.ContentType != reports.ContentTypeCSV {
		t.Fatalf("wrong content type %q", doc.ContentType)
	}
	if !strings.HasPrefix(string(doc.Data), "Student Name,") {
		t.Fatalf("unexpected document head: %q", string(doc.Data)[:20])
	}
}

func TestExportCSVTimeSlotFilename(t *testing.T) {
	svc, mock, done := exportServiceWithBookings(t)
	defer done()

	mock.ExpectQuery("FROM trips t").
		WillReturnRows(sqlmock.NewRows([]string{"id", "trip_date", "start_time"}).
			AddRow(1, "2024-07-01", "08:00:00"))
	mock.ExpectQuery("FROM bookings b").
		WillReturnRows(sqlmock.NewRows([]string{"trip_id", "cost", "payment_method", "cancelled"}))

	doc, err := svc.ExportCSV(ReportFilter{Type: ReportTypeTimeSlot}, "")
	if err != nil {
		t.Fatalf("ExportCSV error: %v", err)
	}
	if doc.Filename != reports.FilenameTimeSlotCSV {
		t.Fatalf("wrong filename %q", doc.Filename)
	}
}

func TestExportCSVDateRangeVariants(t *testing.T) {
	svc, mock, done := exportServiceWithBookings(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").
		WillReturnRows(sqlmock.NewRows(bookingColumns()))
	mock.ExpectQuery("FROM bookings b").
		WillReturnRows(sqlmock.NewRows(bookingColumns()))

	plain, err := svc.ExportCSV(ReportFilter{Type: ReportTypeDateRange}, "")
	if err != nil {
		t.Fatalf("plain export error: %v", err)
	}
	if plain.Filename != reports.FilenameDateRangeCSV {
		t.Fatalf("wrong plain filename %q", plain.Filename)
	}

	manager, err := svc.ExportCSV(ReportFilter{Type: ReportTypeDateRange}, ExportVariantManager)
	if err != nil {
		t.Fatalf("manager export error: %v", err)
	}
	if manager.Filename != reports.FilenameManagerCSV {
		t.Fatalf("wrong manager filename %q", manager.Filename)
	}
	if !strings.HasPrefix(string(manager.Data), "Total Students,") {
		t.Fatalf("manager export missing preamble: %q", string(manager.Data))
	}
}

func TestExportManagerWorkbook(t *testing.T) {
	svc, mock, done := exportServiceWithBookings(t)
	defer done()

	mock.ExpectQuery("FROM bookings b").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(1, "2024-07-01", 40.0, 5.0, "card", 0, "Amy", 12345))

	doc, err := svc.ExportManagerWorkbook(ReportFilter{})
	if err != nil {
		t.Fatalf("ExportManagerWorkbook error: %v", err)
	}
	if doc.Filename != reports.FilenameManagerXLSX {
		t.Fatalf("wrong filename %q", doc.Filename)
	}
	if doc.ContentType != reports.ContentTypeXLSX {
		t.Fatalf("wrong content type %q", doc.ContentType)
	}
	if len(doc.Data) == 0 {
		t.Fatalf("empty workbook")
	}
}
