package reports

import (
	"strconv"
	"strings"

	"backend/internal/utils"
)

// Download filenames are fixed per report type.
const (
	FilenameStudentCSV   = "student-trip-report.csv"
	FilenameTimeSlotCSV  = "timeslot-report.csv"
	FilenameDateRangeCSV = "date-range-report.csv"
	FilenameManagerCSV   = "manager-trip-report.csv"
	FilenameManagerXLSX  = "manager-trip-report.xlsx"
	ContentTypeCSV       = "text/csv"
	ContentTypeXLSX      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// quote always wraps a text field so embedded separators are tolerated.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func writeLine(b *strings.Builder, fields []string) {
	b.WriteString(strings.Join(fields, ","))
	b.WriteByte('\n')
}

// ExportStudentCSV serializes the per-student rollup. Text fields are
// quoted; numerics keep source precision.
func ExportStudentCSV(in []StudentReport) []byte {
	var b strings.Builder
	b.WriteString("Student Name,Total Trips,Paid Trips,Free Trips,Distance (km),Total Cost (ZAR)\n")
	for _, r := range in {
		writeLine(&b, []string{
			quote(r.StudentName),
			strconv.Itoa(r.TotalTrips),
			strconv.Itoa(r.PaidTrips),
			strconv.Itoa(r.FreeTrips),
			utils.FormatNumber(r.TotalDistance),
			utils.FormatNumber(r.TotalCost),
		})
	}
	return []byte(b.String())
}

// ExportTimeSlotCSV serializes the per-time-slot rollup.
func ExportTimeSlotCSV(in []TimeSlotReport) []byte {
	var b strings.Builder
	b.WriteString("Time Slot,Total Bookings,Avg Occupancy,Type,Revenue (ZAR)\n")
	for _, r := range in {
		writeLine(&b, []string{
			quote(r.TimeSlot),
			strconv.Itoa(r.TotalBookings),
			quote(r.AvgOccupancy),
			r.Type,
			utils.FormatNumber(r.Revenue),
		})
	}
	return []byte(b.String())
}

// ExportDateRangeCSV is the plain date-range export: no preamble, no
// currency prefix, and missing date cells emit "0,0.00".
//
// Deliberately a separate code path from ExportManagerCSV; the two serve
// different downstream consumers and their blank-cell and currency rules
// must not be unified.
func ExportDateRangeCSV(in []DateRangeReport) []byte {
	dates := DistinctDates(in)

	var b strings.Builder
	header := []string{"Student Name"}
	for _, d := range dates {
		header = append(header, d+" Trips", d+" Billing")
	}
	header = append(header, "Total Trips", "Total Billing")
	writeLine(&b, header)

	for _, r := range in {
		fields := []string{quote(r.StudentName)}
		for _, d := range dates {
			if cell, ok := r.Dates[d]; ok {
				fields = append(fields, strconv.Itoa(cell.TotalTrips), utils.FormatMoney(cell.TotalBilling))
			} else {
				fields = append(fields, "0", "0.00")
			}
		}
		fields = append(fields, strconv.Itoa(r.TotalTrips), utils.FormatMoney(r.TotalCost))
		writeLine(&b, fields)
	}
	return []byte(b.String())
}

// ExportManagerCSV is the manager-facing date-range export: two preamble
// lines (student count, revenue sum), a leading Student Number column,
// "R"-prefixed currency values, and empty strings for missing date cells.
func ExportManagerCSV(in []DateRangeReport) []byte {
	dates := DistinctDates(in)

	var b strings.Builder
	writeLine(&b, []string{"Total Students", strconv.Itoa(len(in))})
	writeLine(&b, []string{"Total Revenue", utils.FormatRand(TotalRevenue(in))})

	header := []string{"Student Number", "Student Name"}
	for _, d := range dates {
		header = append(header, d+" Trips", d+" Billing")
	}
	header = append(header, "Total Trips", "Total Billing")
	writeLine(&b, header)

	for _, r := range in {
		fields := []string{strconv.FormatInt(r.StudentNumber, 10), quote(r.StudentName)}
		for _, d := range dates {
			if cell, ok := r.Dates[d]; ok {
				fields = append(fields, strconv.Itoa(cell.TotalTrips), utils.FormatRand(cell.TotalBilling))
			} else {
				fields = append(fields, "", "")
			}
		}
		fields = append(fields, strconv.Itoa(r.TotalTrips), utils.FormatRand(r.TotalCost))
		writeLine(&b, fields)
	}
	return []byte(b.String())
}

// TotalRevenue sums every student's total cost across the matrix.
func TotalRevenue(in []DateRangeReport) float64 {
	var sum float64
	for _, r := range in {
		sum += r.TotalCost
	}
	return sum
}
