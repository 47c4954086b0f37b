package repositories

import (
	"database/sql"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/reports"
)

// ReportRepository fetches the denormalized row sets the rollup core
// consumes. Joins are done here so the core stays a pure function of
// in-memory slices.
type ReportRepository struct {
	DB *sql.DB
}

func (r ReportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListBookings returns non-cancelled bookings joined with their student.
// Date bounds are inclusive and either may be empty (open interval). An
// absent user join surfaces as a nil Student, never a zero-value one.
func (r ReportRepository) ListBookings(dateFrom, dateTo string) ([]reports.BookingRow, error) {
	where := []string{"b.cancelled = 0"}
	args := []any{}
	if v := strings.TrimSpace(dateFrom); v != "" {
		where = append(where, "b.trip_date >= ?")
		args = append(args, v)
	}
	if v := strings.TrimSpace(dateTo); v != "" {
		where = append(where, "b.trip_date <= ?")
		args = append(args, v)
	}

	query := `
		SELECT
			b.id,
			COALESCE(b.trip_date, ''),
			COALESCE(b.cost, 0),
			COALESCE(b.distance_traveled, 0),
			COALESCE(b.payment_method, ''),
			b.cancelled,
			u.name,
			u.student_number
		FROM bookings b
		LEFT JOIN users u ON u.id = b.user_id
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY b.id ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []reports.BookingRow{}
	for rows.Next() {
		var rec reports.BookingRow
		var cancelled int64
		var name sql.NullString
		var number sql.NullInt64
		if err := rows.Scan(
			&rec.ID,
			&rec.TripDate,
			&rec.Cost,
			&rec.DistanceKM,
			&rec.PaymentMethod,
			&cancelled,
			&name,
			&number,
		); err != nil {
			return out, err
		}
		rec.Cancelled = cancelled != 0
		if name.Valid {
			rec.Student = &reports.StudentRef{
				Name:   name.String,
				Number: number.Int64,
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ListTrips returns every trip with its resolved start time and embedded
// bookings. Cancelled bookings are included; the time-slot rollup filters
// them itself.
func (r ReportRepository) ListTrips() ([]reports.TripRow, error) {
	db := r.db()

	rows, err := db.Query(`
		SELECT
			t.id,
			COALESCE(t.trip_date, ''),
			COALESCE(ts.start_time, '')
		FROM trips t
		LEFT JOIN time_slots ts ON ts.id = t.time_slot_id
		ORDER BY t.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []reports.TripRow{}
	index := map[int64]int{}
	for rows.Next() {
		var rec reports.TripRow
		if err := rows.Scan(&rec.ID, &rec.TripDate, &rec.StartTime); err != nil {
			return out, err
		}
		index[rec.ID] = len(out)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}

	brows, err := db.Query(`
		SELECT
			b.trip_id,
			COALESCE(b.cost, 0),
			COALESCE(b.payment_method, ''),
			b.cancelled
		FROM bookings b
		ORDER BY b.id ASC`)
	if err != nil {
		return out, err
	}
	defer brows.Close()

	for brows.Next() {
		var tripID int64
		var bk reports.TripBooking
		var cancelled int64
		if err := brows.Scan(&tripID, &bk.Cost, &bk.PaymentMethod, &cancelled); err != nil {
			return out, err
		}
		bk.Cancelled = cancelled != 0
		if i, ok := index[tripID]; ok {
			out[i].Bookings = append(out[i].Bookings, bk)
		}
	}
	return out, brows.Err()
}
