package repositories

import (
	"database/sql"
	"errors"

	intconfig "backend/internal/config"
	"backend/internal/domain"
	"backend/internal/domain/models"
)

type StudentRepository struct {
	DB *sql.DB
}

func (r StudentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StudentRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(student_number,0), COALESCE(role,'')
		FROM users
		WHERE role = 'student'
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.StudentNumber, &u.Role); err != nil {
			return out, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r StudentRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(student_number,0), COALESCE(role,'')
		FROM users
		WHERE id = ? LIMIT 1`, id).
		Scan(&u.ID, &u.Name, &u.StudentNumber, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "student"}
	}
	return u, err
}

func (r StudentRepository) Create(u models.User) (int64, error) {
	role := u.Role
	if role == "" {
		role = "student"
	}
	res, err := r.db().Exec(`
		INSERT INTO users (name, student_number, role) VALUES (?, ?, ?)`,
		u.Name, u.StudentNumber, role)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r StudentRepository) Update(u models.User) error {
	res, err := r.db().Exec(`
		UPDATE users SET name = ?, student_number = ? WHERE id = ?`,
		u.Name, u.StudentNumber, u.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "student")
}

func (r StudentRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE id = ? AND role = 'student'`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "student")
}
