package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type RateRepository struct {
	DB *sql.DB
}

func (r RateRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RateRepository) List() ([]models.Rate, error) {
	rows, err := r.db().Query(`
		SELECT id, stop_id, COALESCE(cost,0), COALESCE(distance_km,0)
		FROM rates
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Rate{}
	for rows.Next() {
		var rate models.Rate
		if err := rows.Scan(&rate.ID, &rate.StopID, &rate.Cost, &rate.DistanceKM); err != nil {
			return out, err
		}
		out = append(out, rate)
	}
	return out, rows.Err()
}

// GetByStop returns the rate for a stop; bookings are priced from it.
func (r RateRepository) GetByStop(stopID int64) (models.Rate, error) {
	var rate models.Rate
	err := r.db().QueryRow(`
		SELECT id, stop_id, COALESCE(cost,0), COALESCE(distance_km,0)
		FROM rates
		WHERE stop_id = ? LIMIT 1`, stopID).
		Scan(&rate.ID, &rate.StopID, &rate.Cost, &rate.DistanceKM)
	if errors.Is(err, sql.ErrNoRows) {
		return rate, domain.NotFoundError{Resource: "rate"}
	}
	return rate, err
}

func (r RateRepository) Create(rate models.Rate) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO rates (stop_id, cost, distance_km) VALUES (?, ?, ?)`,
		rate.StopID, rate.Cost, rate.DistanceKM)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RateRepository) Update(rate models.Rate) error {
	res, err := r.db().Exec(`
		UPDATE rates SET stop_id = ?, cost = ?, distance_km = ? WHERE id = ?`,
		rate.StopID, rate.Cost, rate.DistanceKM, rate.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "rate")
}

func (r RateRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM rates WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "rate")
}
