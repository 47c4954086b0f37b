package reports

import (
	"reflect"
	"testing"
)

func TestStudentTable(t *testing.T) {
	in := []StudentReport{
		{StudentName: "Amy", TotalTrips: 2, PaidTrips: 1, FreeTrips: 1, TotalDistance: 7.5, TotalCost: 30},
	}
	table := StudentTable(in)

	if len(table.Columns) != 6 {
		t.Fatalf("expected 6 columns, got %d", len(table.Columns))
	}
	want := []string{"Amy", "2", "1", "1", "7.5", "30"}
	if !reflect.DeepEqual(table.Rows[0], want) {
		t.Fatalf("got %v want %v", table.Rows[0], want)
	}
}

func TestDateRangeTableDynamicColumns(t *testing.T) {
	table := DateRangeTable(dateRangeFixture())

	wantCols := []string{
		"Student Name", "Student Number",
		"2024-07-01 Trips", "2024-07-01 Billing",
		"2024-07-02 Trips", "2024-07-02 Billing",
		"Total Trips", "Total Billing",
	}
	if !reflect.DeepEqual(table.Columns, wantCols) {
		t.Fatalf("columns mismatch:\n got %v\nwant %v", table.Columns, wantCols)
	}

	wantAmy := []string{"Amy", "12345", "2", "40.00", "0", "0.00", "2", "40.00"}
	if !reflect.DeepEqual(table.Rows[0], wantAmy) {
		t.Fatalf("row mismatch:\n got %v\nwant %v", table.Rows[0], wantAmy)
	}
}

func TestTimeSlotTableEmpty(t *testing.T) {
	table := TimeSlotTable(nil)
	if table.Rows == nil || len(table.Rows) != 0 {
		t.Fatalf("empty rollup should render an empty table, got %#v", table.Rows)
	}
}
