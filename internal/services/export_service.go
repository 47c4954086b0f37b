package services

import (
	"strconv"

	"backend/internal/domain"
	"backend/internal/reports"
	"backend/internal/utils"

	"github.com/xuri/excelize/v2"
)

// ExportVariantManager selects the manager-facing date-range export.
const ExportVariantManager = "manager"

// ExportDoc is a ready-to-download report document.
type ExportDoc struct {
	Filename    string
	ContentType string
	Data        []byte
}

type ExportService struct {
	Reports   ReportService
	RequestID string
}

// ExportCSV builds the delimited export for a report type. The date-range
// report has two variants with deliberately different contracts: the plain
// CSV renders missing cells as zeros, the manager variant adds a summary
// preamble, a student-number column and R-prefixed currency with blank
// missing cells.
func (s ExportService) ExportCSV(f ReportFilter, variant string) (ExportDoc, error) {
	res, err := s.Reports.Build(f)
	if err != nil {
		return ExportDoc{}, err
	}

	doc := ExportDoc{ContentType: reports.ContentTypeCSV}
	switch res.Type {
	case ReportTypeStudent:
		doc.Filename = reports.FilenameStudentCSV
		doc.Data = reports.ExportStudentCSV(res.Students)
	case ReportTypeTimeSlot:
		doc.Filename = reports.FilenameTimeSlotCSV
		doc.Data = reports.ExportTimeSlotCSV(res.TimeSlots)
	case ReportTypeDateRange:
		if variant == ExportVariantManager {
			doc.Filename = reports.FilenameManagerCSV
			doc.Data = reports.ExportManagerCSV(res.DateRange)
		} else {
			doc.Filename = reports.FilenameDateRangeCSV
			doc.Data = reports.ExportDateRangeCSV(res.DateRange)
		}
	}

	utils.LogEvent(s.RequestID, "export", "csv", doc.Filename+" bytes="+strconv.Itoa(len(doc.Data)))
	return doc, nil
}

// ExportManagerWorkbook renders the manager date-range report as an xlsx
// workbook with the same cell semantics as the manager CSV.
func (s ExportService) ExportManagerWorkbook(f ReportFilter) (ExportDoc, error) {
	f.Type = ReportTypeDateRange
	res, err := s.Reports.Build(f)
	if err != nil {
		return ExportDoc{}, err
	}

	data, err := buildManagerWorkbook(res.DateRange)
	if err != nil {
		return ExportDoc{}, domain.InternalError{Msg: "export failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "export", "xlsx", reports.FilenameManagerXLSX+" bytes="+strconv.Itoa(len(data)))
	return ExportDoc{
		Filename:    reports.FilenameManagerXLSX,
		ContentType: reports.ContentTypeXLSX,
		Data:        data,
	}, nil
}

func buildManagerWorkbook(in []reports.DateRangeReport) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Manager Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	// summary preamble, mirroring the CSV contract
	f.SetCellValue(sheet, "A1", "Total Students")
	f.SetCellValue(sheet, "B1", len(in))
	f.SetCellValue(sheet, "A2", "Total Revenue")
	f.SetCellValue(sheet, "B2", utils.FormatRand(reports.TotalRevenue(in)))

	dates := reports.DistinctDates(in)
	headers := []string{"Student Number", "Student Name"}
	for _, d := range dates {
		headers = append(headers, d+" Trips", d+" Billing")
	}
	headers = append(headers, "Total Trips", "Total Billing")

	const headerRow = 3
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, r := range in {
		values := []any{r.StudentNumber, r.StudentName}
		for _, d := range dates {
			if cell, ok := r.Dates[d]; ok {
				values = append(values, cell.TotalTrips, utils.FormatRand(cell.TotalBilling))
			} else {
				values = append(values, "", "")
			}
		}
		values = append(values, r.TotalTrips, utils.FormatRand(r.TotalCost))

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, headerRow+1+rowIdx)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
