package reports

import (
	"strconv"

	"backend/internal/utils"
)

// Table is the in-memory tabular model handed to the rendering layer.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// StudentTable renders the per-student rollup for display.
func StudentTable(in []StudentReport) Table {
	t := Table{
		Columns: []string{"Student Name", "Total Trips", "Paid Trips", "Free Trips", "Distance (km)", "Total Cost (ZAR)"},
		Rows:    [][]string{},
	}
	for _, r := range in {
		t.Rows = append(t.Rows, []string{
			r.StudentName,
			strconv.Itoa(r.TotalTrips),
			strconv.Itoa(r.PaidTrips),
			strconv.Itoa(r.FreeTrips),
			utils.FormatNumber(r.TotalDistance),
			utils.FormatNumber(r.TotalCost),
		})
	}
	return t
}

// TimeSlotTable renders the per-time-slot rollup for display.
func TimeSlotTable(in []TimeSlotReport) Table {
	t := Table{
		Columns: []string{"Time Slot", "Total Bookings", "Avg Occupancy", "Type", "Revenue (ZAR)"},
		Rows:    [][]string{},
	}
	for _, r := range in {
		t.Rows = append(t.Rows, []string{
			r.TimeSlot,
			strconv.Itoa(r.TotalBookings),
			r.AvgOccupancy,
			r.Type,
			utils.FormatNumber(r.Revenue),
		})
	}
	return t
}

// DateRangeTable renders the sparse matrix with one "Trips"/"Billing"
// column pair per distinct date across all students, ascending.
func DateRangeTable(in []DateRangeReport) Table {
	dates := DistinctDates(in)

	cols := []string{"Student Name", "Student Number"}
	for _, d := range dates {
		cols = append(cols, d+" Trips", d+" Billing")
	}
	cols = append(cols, "Total Trips", "Total Billing")

	t := Table{Columns: cols, Rows: [][]string{}}
	for _, r := range in {
		row := []string{r.StudentName, strconv.FormatInt(r.StudentNumber, 10)}
		for _, d := range dates {
			if cell, ok := r.Dates[d]; ok {
				row = append(row, strconv.Itoa(cell.TotalTrips), utils.FormatMoney(cell.TotalBilling))
			} else {
				row = append(row, "0", utils.FormatMoney(0))
			}
		}
		row = append(row, strconv.Itoa(r.TotalTrips), utils.FormatMoney(r.TotalCost))
		t.Rows = append(t.Rows, row)
	}
	return t
}
