package services

import (
	"strings"

	"backend/internal/domain"
	"backend/internal/repositories"
	"backend/internal/reports"
	"backend/internal/utils"
)

// Report type parameter values.
const (
	ReportTypeStudent   = "student"
	ReportTypeTimeSlot  = "timeSlot"
	ReportTypeDateRange = "dateRange"
)

type ReportFilter struct {
	Type     string
	Student  string
	DateFrom string
	DateTo   string
}

// ReportResult carries exactly one populated rollup plus its display table.
type ReportResult struct {
	Type      string                    `json:"type"`
	Students  []reports.StudentReport   `json:"students,omitempty"`
	TimeSlots []reports.TimeSlotReport  `json:"timeSlots,omitempty"`
	DateRange []reports.DateRangeReport `json:"dateRange,omitempty"`
	Table     reports.Table             `json:"table"`
}

type ReportService struct {
	Repo repositories.ReportRepository
}

// Build fetches the source rows for the requested report type and runs the
// matching rollup. A query failure short-circuits: no partial result is
// returned.
func (s ReportService) Build(f ReportFilter) (ReportResult, error) {
	var err error
	if f.DateFrom, err = normalizeDate("date_from", f.DateFrom); err != nil {
		return ReportResult{}, err
	}
	if f.DateTo, err = normalizeDate("date_to", f.DateTo); err != nil {
		return ReportResult{}, err
	}

	out := ReportResult{Type: normalizeReportType(f.Type)}

	switch out.Type {
	case ReportTypeStudent:
		rows, err := s.Repo.ListBookings("", "")
		if err != nil {
			return ReportResult{}, domain.InternalError{Msg: "report query failed", Err: err}
		}
		out.Students = reports.FilterStudents(reports.AggregateByStudent(rows), f.Student)
		out.Table = reports.StudentTable(out.Students)

	case ReportTypeTimeSlot:
		trips, err := s.Repo.ListTrips()
		if err != nil {
			return ReportResult{}, domain.InternalError{Msg: "report query failed", Err: err}
		}
		out.TimeSlots = reports.AggregateByTimeSlot(trips)
		out.Table = reports.TimeSlotTable(out.TimeSlots)

	case ReportTypeDateRange:
		rows, err := s.Repo.ListBookings(f.DateFrom, f.DateTo)
		if err != nil {
			return ReportResult{}, domain.InternalError{Msg: "report query failed", Err: err}
		}
		out.DateRange = reports.AggregateByDateRange(rows)
		out.Table = reports.DateRangeTable(out.DateRange)

	default:
		return ReportResult{}, domain.ValidationError{Field: "type", Msg: "must be student, timeSlot or dateRange"}
	}
	return out, nil
}

// normalizeDate validates an optional YYYY-MM-DD bound and canonicalizes it.
func normalizeDate(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	t, err := utils.ParseDate(v)
	if err != nil {
		return "", domain.ValidationError{Field: field, Msg: "must be YYYY-MM-DD", Err: err}
	}
	return utils.FormatDate(t), nil
}

func normalizeReportType(t string) string {
	switch strings.TrimSpace(t) {
	case "", ReportTypeStudent:
		return ReportTypeStudent
	case ReportTypeTimeSlot, "timeslot", "time_slot":
		return ReportTypeTimeSlot
	case ReportTypeDateRange, "daterange", "date_range":
		return ReportTypeDateRange
	default:
		return strings.TrimSpace(t)
	}
}
