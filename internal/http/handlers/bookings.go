package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  repositories.BookingRepository{},
		Rates:     repositories.RateRepository{},
		Trips:     repositories.TripRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GetBookingQuote handles GET /api/bookings/quote?stop_id=N.
func GetBookingQuote(c *gin.Context) {
	stopID, err := parseID(c.Query("stop_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid stop_id", err)
		return
	}
	rate, err := bookingService(c).Quote(stopID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rate)
}

func CreateBooking(c *gin.Context) {
	var req services.BookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	booking, err := bookingService(c).Create(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

func CancelBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := bookingService(c).Cancel(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": id})
}

// GetUserBookings handles GET /api/users/:id/bookings.
func GetUserBookings(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	bookings, err := bookingService(c).ListForUser(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
