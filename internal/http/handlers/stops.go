package handlers

import (
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func GetStops(c *gin.Context) {
	repo := repositories.StopRepository{}
	stops, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list stops", err)
		return
	}
	c.JSON(http.StatusOK, stops)
}

func GetStopByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	repo := repositories.StopRepository{}
	stop, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

func CreateStop(c *gin.Context) {
	var stop models.Stop
	if !BindJSONOrError(c, &stop) {
		return
	}
	if stop.Name == "" {
		RespondError(c, http.StatusBadRequest, "name required", nil)
		return
	}
	repo := repositories.StopRepository{}
	id, err := repo.Create(stop)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create stop", err)
		return
	}
	stop.ID = id
	c.JSON(http.StatusCreated, stop)
}

func UpdateStop(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var stop models.Stop
	if !BindJSONOrError(c, &stop) {
		return
	}
	stop.ID = id
	repo := repositories.StopRepository{}
	if err := repo.Update(stop); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stop)
}

func DeleteStop(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	repo := repositories.StopRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
