package registration

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/openlearnhq/education-platform-backend/internal/event"
)

const (
	FormatExcel = "xlsx"
	FormatCSV   = "csv"
	FormatPDF   = "pdf"
)

const phonePlaceholder = "N/A"

// exportByFormat chooses the export format for the attendee roster.
func exportByFormat(ev *event.Event, format string) ([]byte, string, string, error) {
	base := exportFilename(ev.Title)

	switch format {
	case FormatExcel, "":
		data, err := exportAttendeesExcel(ev)
		if err != nil {
			return nil, "", "", err
		}
		return data, base + ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		data, err := exportAttendeesCSV(ev)
		if err != nil {
			return nil, "", "", err
		}
		return data, base + ".csv", "text/csv", nil

	case FormatPDF:
		data, err := exportAttendeesPDF(ev)
		if err != nil {
			return nil, "", "", err
		}
		return data, base + ".pdf", "application/pdf", nil

	default:
		return nil, "", "", event.NewValidationError(fmt.Sprintf("unsupported export format: %s", format))
	}
}

// exportFilename derives the download name from the event title with
// whitespace replaced by underscores.
func exportFilename(title string) string {
	name := strings.Join(strings.Fields(title), "_")
	if name == "" {
		name = "attendees"
	}
	return name
}

// exportAttendeesExcel builds the two-sheet workbook: one row per attendee
// plus a summary sheet with event metadata and the total count.
func exportAttendeesExcel(ev *event.Event) ([]byte, error) {
	f := excelize.NewFile()

	attendeeSheet := "Attendees"
	f.SetSheetName("Sheet1", attendeeSheet)

	headers := []string{"Name", "Email", "Phone", "Registration Date", "Registration Time"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(attendeeSheet, cell, h)
	}

	for i, a := range ev.Attendees {
		row := i + 2
		phone := a.Phone
		if phone == "" {
			phone = phonePlaceholder
		}
		f.SetCellValue(attendeeSheet, fmt.Sprintf("A%d", row), a.Name)
		f.SetCellValue(attendeeSheet, fmt.Sprintf("B%d", row), a.Email)
		f.SetCellValue(attendeeSheet, fmt.Sprintf("C%d", row), phone)
		f.SetCellValue(attendeeSheet, fmt.Sprintf("D%d", row), a.RegisteredAt.Format("2006-01-02"))
		f.SetCellValue(attendeeSheet, fmt.Sprintf("E%d", row), a.RegisteredAt.Format("15:04:05"))
	}

	summarySheet := "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}

	summary := [][]interface{}{
		{"Event", ev.Title},
		{"Date", ev.Date.Format("2006-01-02 15:04")},
		{"Location", ev.Location},
		{"Type", ev.Type},
		{"Price", ev.Price},
		{"Total Attendees", len(ev.Attendees)},
	}
	for i, pair := range summary {
		row := i + 1
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), pair[0])
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), pair[1])
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportAttendeesCSV(ev *event.Event) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Email", "Phone", "Registration Date", "Registration Time"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, a := range ev.Attendees {
		phone := a.Phone
		if phone == "" {
			phone = phonePlaceholder
		}
		record := []string{
			a.Name,
			a.Email,
			phone,
			a.RegisteredAt.Format("2006-01-02"),
			a.RegisteredAt.Format("15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportAttendeesPDF(ev *event.Event) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, ev.Title)
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("%s | %s | %d attendees",
		ev.Date.Format("2006-01-02 15:04"), ev.Location, len(ev.Attendees)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	headers := []string{"Name", "Email", "Phone", "Date", "Time"}
	widths := []float64{45, 60, 30, 28, 22}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, a := range ev.Attendees {
		phone := a.Phone
		if phone == "" {
			phone = phonePlaceholder
		}
		pdf.CellFormat(widths[0], 6, a.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, a.Email, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, phone, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, a.RegisteredAt.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, a.RegisteredAt.Format("15:04:05"), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
