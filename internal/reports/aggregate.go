// Package reports holds the rollup core: pure functions that turn flat
// booking/trip rows into per-student, per-time-slot and per-date-range
// summaries, plus their table and export renderings. Nothing here touches
// the database or keeps state between calls.
package reports

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// TripCapacity is the assumed seats per shuttle for the occupancy
	// column. Real vehicle capacity is not consulted.
	TripCapacity = 15

	// PaymentFree classifies a booking as free; every other payment
	// method counts as paid.
	PaymentFree = "free"

	// FilterAll is the sentinel that disables the student-name filter.
	FilterAll = "all"

	unknownLabel = "Unknown"

	TypeFree = "free"
	TypePaid = "paid"
)

// IsFree reports whether a payment method classifies the booking as free.
func IsFree(paymentMethod string) bool {
	return paymentMethod == PaymentFree
}

// AggregateByStudent groups non-cancelled bookings by resolved display name
// and accumulates trip, distance and cost totals with a paid/free split.
// Bookings without a student join fall under "Unknown". Output order is
// first-seen order of names in the input.
//
// Grouping is by display name, not user id: two students sharing a name
// merge here. The date-range rollup disambiguates by student number.
func AggregateByStudent(rows []BookingRow) []StudentReport {
	out := []StudentReport{}
	index := map[string]int{}

	for _, b := range rows {
		if b.Cancelled {
			continue
		}
		name := unknownLabel
		if b.Student != nil && b.Student.Name != "" {
			name = b.Student.Name
		}

		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, StudentReport{StudentName: name})
		}

		out[i].TotalTrips++
		if IsFree(b.PaymentMethod) {
			out[i].FreeTrips++
		} else {
			out[i].PaidTrips++
		}
		out[i].TotalDistance += b.DistanceKM
		out[i].TotalCost += b.Cost
	}
	return out
}

// FilterStudents keeps reports whose name contains the filter
// (case-insensitive). Empty filter or the "all" sentinel returns the input
// unchanged; a filter matching nothing returns an empty slice.
func FilterStudents(in []StudentReport, filter string) []StudentReport {
	f := strings.TrimSpace(filter)
	if f == "" || strings.EqualFold(f, FilterAll) {
		return in
	}
	needle := strings.ToLower(f)
	out := []StudentReport{}
	for _, r := range in {
		if strings.Contains(strings.ToLower(r.StudentName), needle) {
			out = append(out, r)
		}
	}
	return out
}

// AggregateByTimeSlot groups trips by start time and sums their
// non-cancelled bookings. A slot is typed "free" only when free bookings
// strictly outnumber paid ones; ties (including empty slots) are "paid".
// Trips without a time-slot join group under "Unknown".
func AggregateByTimeSlot(trips []TripRow) []TimeSlotReport {
	type split struct{ free, paid int }

	out := []TimeSlotReport{}
	index := map[string]int{}
	splits := []split{}

	for _, t := range trips {
		slot := t.StartTime
		if slot == "" {
			slot = unknownLabel
		}

		i, ok := index[slot]
		if !ok {
			i = len(out)
			index[slot] = i
			out = append(out, TimeSlotReport{TimeSlot: slot})
			splits = append(splits, split{})
		}

		for _, b := range t.Bookings {
			if b.Cancelled {
				continue
			}
			out[i].TotalBookings++
			out[i].Revenue += b.Cost
			if IsFree(b.PaymentMethod) {
				splits[i].free++
			} else {
				splits[i].paid++
			}
		}
	}

	for i := range out {
		out[i].AvgOccupancy = fmt.Sprintf("%d/%d", out[i].TotalBookings, TripCapacity)
		if splits[i].free > splits[i].paid {
			out[i].Type = TypeFree
		} else {
			out[i].Type = TypePaid
		}
	}
	return out
}

// AggregateByDateRange builds the per-student, per-date matrix from
// non-cancelled bookings already bounded to the requested interval.
// Bookings without a student join are skipped entirely, not bucketed under
// "Unknown". Students are keyed by name plus student number.
func AggregateByDateRange(rows []BookingRow) []DateRangeReport {
	out := []DateRangeReport{}
	index := map[string]int{}

	for _, b := range rows {
		if b.Cancelled || b.Student == nil {
			continue
		}

		key := b.Student.Name + "-" + strconv.FormatInt(b.Student.Number, 10)
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, DateRangeReport{
				StudentName:   b.Student.Name,
				StudentNumber: b.Student.Number,
				Dates:         map[string]DateCell{},
			})
		}

		cell := out[i].Dates[b.TripDate]
		cell.TotalTrips++
		cell.TotalBilling += b.Cost
		out[i].Dates[b.TripDate] = cell

		out[i].TotalTrips++
		out[i].TotalCost += b.Cost
		if !IsFree(b.PaymentMethod) {
			out[i].PaidTrips++
		}
	}
	return out
}

// DistinctDates returns every date present in any report, ascending.
// Lexicographic order equals chronological order for ISO dates.
func DistinctDates(in []DateRangeReport) []string {
	seen := map[string]bool{}
	dates := []string{}
	for _, r := range in {
		for d := range r.Dates {
			if !seen[d] {
				seen[d] = true
				dates = append(dates, d)
			}
		}
	}
	sort.Strings(dates)
	return dates
}
