package handlers

import (
	"net/http"

	"backend/internal/domain/models"
	"backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

func GetRates(c *gin.Context) {
	repo := repositories.RateRepository{}
	rates, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list rates", err)
		return
	}
	c.JSON(http.StatusOK, rates)
}

func CreateRate(c *gin.Context) {
	var rate models.Rate
	if !BindJSONOrError(c, &rate) {
		return
	}
	if rate.StopID <= 0 {
		RespondError(c, http.StatusBadRequest, "stop_id required", nil)
		return
	}
	repo := repositories.RateRepository{}
	id, err := repo.Create(rate)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create rate", err)
		return
	}
	rate.ID = id
	c.JSON(http.StatusCreated, rate)
}

func UpdateRate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var rate models.Rate
	if !BindJSONOrError(c, &rate) {
		return
	}
	rate.ID = id
	repo := repositories.RateRepository{}
	if err := repo.Update(rate); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

func DeleteRate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	repo := repositories.RateRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
