package repositories

import (
	"database/sql"

	intconfig "backend/internal/config"
	"backend/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings
			(user_id, trip_id, stop_id, trip_date, cost, distance_traveled, payment_method, cancelled)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0)`,
		b.UserID, b.TripID, b.StopID, b.TripDate, b.Cost, b.DistanceKM, b.PaymentMethod)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Cancel soft-deletes: the row stays for audit but leaves every rollup.
func (r BookingRepository) Cancel(id int64) error {
	res, err := r.db().Exec(`UPDATE bookings SET cancelled = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "booking")
}

func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT
			id, user_id, trip_id, stop_id,
			COALESCE(trip_date, ''),
			COALESCE(cost, 0),
			COALESCE(distance_traveled, 0),
			COALESCE(payment_method, ''),
			cancelled
		FROM bookings
		WHERE user_id = ?
		ORDER BY trip_date DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var cancelled int64
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.TripID, &b.StopID,
			&b.TripDate, &b.Cost, &b.DistanceKM, &b.PaymentMethod,
			&cancelled,
		); err != nil {
			return out, err
		}
		b.Cancelled = cancelled != 0
		out = append(out, b)
	}
	return out, rows.Err()
}
