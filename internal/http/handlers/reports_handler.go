package handlers

import (
	"net/http"
	"strings"

	"backend/internal/http/middleware"
	"backend/internal/repositories"
	"backend/internal/services"

	"github.com/gin-gonic/gin"
)

func reportFilterFromQuery(c *gin.Context) services.ReportFilter {
	return services.ReportFilter{
		Type:     strings.TrimSpace(c.DefaultQuery("type", services.ReportTypeStudent)),
		Student:  strings.TrimSpace(c.DefaultQuery("student", "all")),
		DateFrom: strings.TrimSpace(c.Query("date_from")),
		DateTo:   strings.TrimSpace(c.Query("date_to")),
	}
}

// GetReport handles GET /api/reports?type=student|timeSlot|dateRange.
// Every call recomputes the rollup from source rows; nothing is cached
// between requests.
func GetReport(c *gin.Context) {
	svc := services.ReportService{Repo: repositories.ReportRepository{}}
	result, err := svc.Build(reportFilterFromQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportReport handles GET /api/reports/export. variant=manager selects the
// manager-facing date-range contract; format=xlsx the workbook rendition.
func ExportReport(c *gin.Context) {
	filter := reportFilterFromQuery(c)
	variant := strings.TrimSpace(c.Query("variant"))

	svc := services.ExportService{
		Reports:   services.ReportService{Repo: repositories.ReportRepository{}},
		RequestID: middleware.GetRequestID(c),
	}

	var doc services.ExportDoc
	var err error
	if strings.EqualFold(strings.TrimSpace(c.Query("format")), "xlsx") {
		doc, err = svc.ExportManagerWorkbook(filter)
	} else {
		doc, err = svc.ExportCSV(filter, variant)
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
