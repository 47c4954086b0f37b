package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
	"backend/internal/utils"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripSelect = `
	SELECT
		t.id,
		COALESCE(t.trip_date, ''),
		COALESCE(t.time_slot_id, 0),
		COALESCE(ts.start_time, ''),
		COALESCE(t.driver_id, 0),
		COALESCE(d.name, ''),
		COALESCE(t.route, '')
	FROM trips t
	LEFT JOIN time_slots ts ON ts.id = t.time_slot_id
	LEFT JOIN users d ON d.id = t.driver_id`

func scanTrip(scan func(dest ...any) error) (models.Trip, error) {
	var t models.Trip
	var route string
	err := scan(&t.ID, &t.TripDate, &t.TimeSlotID, &t.StartTime, &t.DriverID, &t.DriverName, &route)
	if err != nil {
		return t, err
	}
	t.Route = utils.SplitRouteList(route)
	return t, nil
}

// List returns trips, optionally bounded to a date (both bounds inclusive).
func (r TripRepository) List(dateFrom, dateTo string) ([]models.Trip, error) {
	where := []string{"1=1"}
	args := []any{}
	if v := strings.TrimSpace(dateFrom); v != "" {
		where = append(where, "t.trip_date >= ?")
		args = append(args, v)
	}
	if v := strings.TrimSpace(dateTo); v != "" {
		where = append(where, "t.trip_date <= ?")
		args = append(args, v)
	}

	rows, err := r.db().Query(tripSelect+`
	WHERE `+strings.Join(where, " AND ")+`
	ORDER BY t.trip_date ASC, ts.start_time ASC, t.id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows.Scan)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	row := r.db().QueryRow(tripSelect+`
	WHERE t.id = ? LIMIT 1`, id)
	t, err := scanTrip(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	return t, err
}

func (r TripRepository) Create(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (trip_date, time_slot_id, driver_id, route)
		VALUES (?, ?, ?, ?)`,
		t.TripDate, t.TimeSlotID, t.DriverID, utils.JoinRouteList(t.Route))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TripRepository) Update(t models.Trip) error {
	res, err := r.db().Exec(`
		UPDATE trips SET trip_date = ?, time_slot_id = ?, driver_id = ?, route = ?
		WHERE id = ?`,
		t.TripDate, t.TimeSlotID, t.DriverID, utils.JoinRouteList(t.Route), t.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "trip")
}

func (r TripRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "trip")
}

// ListManifestPassengers returns the non-cancelled bookings on a trip with
// student and stop joins resolved, ordered by stop then student name.
func (r TripRepository) ListManifestPassengers(tripID int64) ([]models.ManifestPassenger, error) {
	rows, err := r.db().Query(`
		SELECT
			COALESCE(u.name, ''),
			COALESCE(u.student_number, 0),
			COALESCE(s.name, ''),
			COALESCE(b.payment_method, '')
		FROM bookings b
		LEFT JOIN users u ON u.id = b.user_id
		LEFT JOIN stops s ON s.id = b.stop_id
		WHERE b.trip_id = ? AND b.cancelled = 0
		ORDER BY s.name ASC, u.name ASC`, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ManifestPassenger{}
	for rows.Next() {
		var p models.ManifestPassenger
		if err := rows.Scan(&p.Name, &p.StudentNumber, &p.StopName, &p.PaymentMethod); err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
