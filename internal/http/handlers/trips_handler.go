package handlers

import (
	"net/http"
	"strings"

	"backend/internal/domain/models"
	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

func GetTrips(c *gin.Context) {
	repo := repositories.TripRepository{}
	trips, err := repo.List(
		strings.TrimSpace(c.Query("date_from")),
		strings.TrimSpace(c.Query("date_to")),
	)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list trips", err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func GetTripByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	repo := repositories.TripRepository{}
	trip, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func CreateTrip(c *gin.Context) {
	var trip models.Trip
	if !BindJSONOrError(c, &trip) {
		return
	}
	if trip.TripDate == "" || trip.TimeSlotID <= 0 {
		RespondError(c, http.StatusBadRequest, "trip_date and time_slot_id required", nil)
		return
	}
	if _, err := utils.ParseDate(trip.TripDate); err != nil {
		RespondError(c, http.StatusBadRequest, "trip_date must be YYYY-MM-DD", err)
		return
	}
	repo := repositories.TripRepository{}
	id, err := repo.Create(trip)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create trip", err)
		return
	}
	trip.ID = id
	c.JSON(http.StatusCreated, trip)
}

func UpdateTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var trip models.Trip
	if !BindJSONOrError(c, &trip) {
		return
	}
	trip.ID = id
	repo := repositories.TripRepository{}
	if err := repo.Update(trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func DeleteTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	repo := repositories.TripRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// GetTripManifest streams the driver manifest PDF for a trip.
func GetTripManifest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	svc := services.ManifestService{
		Trips:     repositories.TripRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	data, filename, err := svc.GenerateManifest(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
