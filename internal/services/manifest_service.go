package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"backend/internal/domain/models"
	"backend/internal/repositories"
	"backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ManifestService renders the driver's trip manifest PDF.
type ManifestService struct {
	Trips     repositories.TripRepository
	RequestID string
}

func (s ManifestService) GenerateManifest(tripID int64) ([]byte, string, error) {
	trip, err := s.Trips.GetByID(tripID)
	if err != nil {
		return nil, "", err
	}
	passengers, err := s.Trips.ListManifestPassengers(tripID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "manifest", "generate", fmt.Sprintf("trip_id=%d passengers=%d", tripID, len(passengers)))
	return buildManifestPDF(trip, passengers)
}

func buildManifestPDF(trip models.Trip, passengers []models.ManifestPassenger) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Manifest", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP MANIFEST")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Trip        : #%d", trip.ID),
		fmt.Sprintf("Date        : %s", safe(trip.TripDate, "-")),
		fmt.Sprintf("Departure   : %s", safe(trip.StartTime, "-")),
		fmt.Sprintf("Driver      : %s", safe(trip.DriverName, "-")),
		fmt.Sprintf("Route       : %s", safe(strings.Join(trip.Route, " - "), "-")),
		fmt.Sprintf("Passengers  : %d", len(passengers)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(70, 8, "Student", "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, "Student No", "1", 0, "L", false, 0, "")
	pdf.CellFormat(55, 8, "Stop", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Payment", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, p := range passengers {
		number := ""
		if p.StudentNumber != 0 {
			number = strconv.FormatInt(p.StudentNumber, 10)
		}
		pdf.CellFormat(70, 8, safe(p.Name, "-"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, number, "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 8, safe(p.StopName, "-"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, safe(p.PaymentMethod, "-"), "1", 1, "L", false, 0, "")
	}

	if len(passengers) == 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "No active bookings on this trip.", "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("MANIFEST_%d_%s.pdf", trip.ID, safeFilenamePart(trip.TripDate))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	out := []rune{}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "trip"
	}
	return string(out)
}
