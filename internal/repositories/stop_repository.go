package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type StopRepository struct {
	DB *sql.DB
}

func (r StopRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StopRepository) List() ([]models.Stop, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(zone,''), active
		FROM stops
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Stop{}
	for rows.Next() {
		var s models.Stop
		var active int64
		if err := rows.Scan(&s.ID, &s.Name, &s.Zone, &active); err != nil {
			return out, err
		}
		s.Active = active != 0
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r StopRepository) GetByID(id int64) (models.Stop, error) {
	var s models.Stop
	var active int64
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(zone,''), active
		FROM stops
		WHERE id = ? LIMIT 1`, id).
		Scan(&s.ID, &s.Name, &s.Zone, &active)
	if errors.Is(err, sql.ErrNoRows) {
		return s, domain.NotFoundError{Resource: "stop"}
	}
	if err != nil {
		return s, err
	}
	s.Active = active != 0
	return s, nil
}

func (r StopRepository) Create(s models.Stop) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO stops (name, zone, active) VALUES (?, ?, ?)`,
		s.Name, s.Zone, boolToInt(s.Active))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r StopRepository) Update(s models.Stop) error {
	res, err := r.db().Exec(`
		UPDATE stops SET name = ?, zone = ?, active = ? WHERE id = ?`,
		s.Name, s.Zone, boolToInt(s.Active), s.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "stop")
}

func (r StopRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM stops WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "stop")
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// requireRow converts "no rows touched" into a NotFoundError.
func requireRow(res sql.Result, resource string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}
