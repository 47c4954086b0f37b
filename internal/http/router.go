package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "backend/internal/config"
	h "backend/internal/http/handlers"
	"backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Reports: rollups plus CSV/XLSX downloads
		reports := api.Group("/reports")
		reports.GET("", h.GetReport)
		reports.GET("/export", h.ExportReport)

		// Stops
		stops := api.Group("/stops")
		stops.GET("", h.GetStops)
		stops.GET("/:id", h.GetStopByID)
		stops.POST("", h.CreateStop)
		stops.PUT("/:id", h.UpdateStop)
		stops.DELETE("/:id", h.DeleteStop)

		// Rates
		rates := api.Group("/rates")
		rates.GET("", h.GetRates)
		rates.POST("", h.CreateRate)
		rates.PUT("/:id", h.UpdateRate)
		rates.DELETE("/:id", h.DeleteRate)

		// Students
		students := api.Group("/students")
		students.GET("", h.GetStudents)
		students.GET("/:id", h.GetStudentByID)
		students.POST("", h.CreateStudent)
		students.PUT("/:id", h.UpdateStudent)
		students.DELETE("/:id", h.DeleteStudent)

		// Trips & driver manifests
		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.POST("", h.CreateTrip)
		trips.PUT("/:id", h.UpdateTrip)
		trips.DELETE("/:id", h.DeleteTrip)
		trips.GET("/:id/manifest", h.GetTripManifest)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.GET("/quote", h.GetBookingQuote)
		bookings.POST("", h.CreateBooking)
		bookings.PUT("/:id/cancel", h.CancelBooking)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	h.SetRouter(r)
	return r
}
