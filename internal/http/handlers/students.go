package handlers

import (
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func GetStudents(c *gin.Context) {
	repo := repositories.StudentRepository{}
	students, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list students", err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func GetStudentByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	repo := repositories.StudentRepository{}
	student, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func CreateStudent(c *gin.Context) {
	var u models.User
	if !BindJSONOrError(c, &u) {
		return
	}
	if u.Name == "" {
		RespondError(c, http.StatusBadRequest, "name required", nil)
		return
	}
	repo := repositories.StudentRepository{}
	id, err := repo.Create(u)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create student", err)
		return
	}
	u.ID = id
	if u.Role == "" {
		u.Role = "student"
	}
	c.JSON(http.StatusCreated, u)
}

func UpdateStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var u models.User
	if !BindJSONOrError(c, &u) {
		return
	}
	u.ID = id
	repo := repositories.StudentRepository{}
	if err := repo.Update(u); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func DeleteStudent(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	repo := repositories.StudentRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
