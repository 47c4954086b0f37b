package models

// User is an account row. Students carry a student_number; staff rows keep 0.
type User struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	StudentNumber int64  `json:"student_number"`
	Role          string `json:"role"`
}
