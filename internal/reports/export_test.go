package reports

import (
	"strings"
	"testing"
)

func exportLines(t *testing.T, data []byte) []string {
	t.Helper()
	s := strings.TrimRight(string(data), "\n")
	return strings.Split(s, "\n")
}

func TestExportStudentCSV(t *testing.T) {
	in := []StudentReport{
		{StudentName: "Amy", TotalTrips: 2, PaidTrips: 1, FreeTrips: 1, TotalDistance: 7, TotalCost: 30},
	}
	lines := exportLines(t, ExportStudentCSV(in))

	if lines[0] != "Student Name,Total Trips,Paid Trips,Free Trips,Distance (km),Total Cost (ZAR)" {
		t.Fatalf("wrong header: %q", lines[0])
	}
	if lines[1] != `"Amy",2,1,1,7,30` {
		t.Fatalf("wrong row: %q", lines[1])
	}
}

func TestExportStudentCSVQuotesEmbeddedSeparators(t *testing.T) {
	in := []StudentReport{{StudentName: `Smith, "JJ"`, TotalTrips: 1, PaidTrips: 1}}
	lines := exportLines(t, ExportStudentCSV(in))
	if lines[1] != `"Smith, ""JJ""",1,1,0,0,0` {
		t.Fatalf("quoting broken: %q", lines[1])
	}
}

func TestExportTimeSlotCSV(t *testing.T) {
	in := []TimeSlotReport{
		{TimeSlot: "08:00:00", TotalBookings: 2, AvgOccupancy: "2/15", Revenue: 55, Type: TypePaid},
	}
	lines := exportLines(t, ExportTimeSlotCSV(in))

	if lines[0] != "Time Slot,Total Bookings,Avg Occupancy,Type,Revenue (ZAR)" {
		t.Fatalf("wrong header: %q", lines[0])
	}
	if lines[1] != `"08:00:00",2,"2/15",paid,55` {
		t.Fatalf("wrong row: %q", lines[1])
	}
}

func dateRangeFixture() []DateRangeReport {
	return []DateRangeReport{
		{
			StudentName:   "Amy",
			StudentNumber: 12345,
			Dates:         map[string]DateCell{"2024-07-01": {TotalTrips: 2, TotalBilling: 40}},
			TotalTrips:    2,
			TotalCost:     40,
			PaidTrips:     2,
		},
		{
			StudentName:   "Ben",
			StudentNumber: 67890,
			Dates:         map[string]DateCell{"2024-07-02": {TotalTrips: 1, TotalBilling: 25}},
			TotalTrips:    1,
			TotalCost:     25,
			PaidTrips:     1,
		},
	}
}

func TestExportDateRangeCSVZeroFillsMissingCells(t *testing.T) {
	lines := exportLines(t, ExportDateRangeCSV(dateRangeFixture()))

	wantHeader := "Student Name,2024-07-01 Trips,2024-07-01 Billing,2024-07-02 Trips,2024-07-02 Billing,Total Trips,Total Billing"
	if lines[0] != wantHeader {
		t.Fatalf("wrong header:\n got %q\nwant %q", lines[0], wantHeader)
	}
	if lines[1] != `"Amy",2,40.00,0,0.00,2,40.00` {
		t.Fatalf("wrong Amy row: %q", lines[1])
	}
	if lines[2] != `"Ben",0,0.00,1,25.00,1,25.00` {
		t.Fatalf("wrong Ben row: %q", lines[2])
	}
}

func TestExportManagerCSVBlanksMissingCells(t *testing.T) {
	lines := exportLines(t, ExportManagerCSV(dateRangeFixture()))

	if lines[0] != "Total Students,2" {
		t.Fatalf("wrong preamble line 1: %q", lines[0])
	}
	if lines[1] != "Total Revenue,R65.00" {
		t.Fatalf("wrong preamble line 2: %q", lines[1])
	}
	wantHeader := "Student Number,Student Name,2024-07-01 Trips,2024-07-01 Billing,2024-07-02 Trips,2024-07-02 Billing,Total Trips,Total Billing"
	if lines[2] != wantHeader {
		t.Fatalf("wrong header:\n got %q\nwant %q", lines[2], wantHeader)
	}
	// booked date renders count plus R-prefixed billing; missing date is blank, not zero
	if lines[3] != `12345,"Amy",2,R40.00,,,2,R40.00` {
		t.Fatalf("wrong Amy row: %q", lines[3])
	}
	if lines[4] != `67890,"Ben",,,1,R25.00,1,R25.00` {
		t.Fatalf("wrong Ben row: %q", lines[4])
	}
}

func TestTotalRevenue(t *testing.T) {
	if got := TotalRevenue(dateRangeFixture()); got != 65 {
		t.Fatalf("got %v want 65", got)
	}
}
