package registration

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/openlearnhq/education-platform-backend/internal/event"
)

func exportFixture() *event.Event {
	registered := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &event.Event{
		ID:       "evt-abc123",
		Title:    "Go  Systems   Workshop",
		Date:     time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC),
		Location: "Bengaluru",
		Type:     event.TypeFree,
		Attendees: []event.Attendee{
			{ID: "a1", Name: "Asha Rao", Email: "asha@example.com", Phone: "+91 98765 43210", RegisteredAt: registered},
			{ID: "a2", Name: "Vikram Shah", Email: "vikram@example.com", RegisteredAt: registered},
		},
	}
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "Go_Systems_Workshop", exportFilename("Go  Systems   Workshop"))
	assert.Equal(t, "attendees", exportFilename("   "))
}

func TestExportExcel(t *testing.T) {
	ev := exportFixture()

	data, filename, contentType, err := exportByFormat(ev, FormatExcel)
	require.NoError(t, err)
	assert.Equal(t, "Go_Systems_Workshop.xlsx", filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", contentType)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Attendees", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Attendees")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Email", "Phone", "Registration Date", "Registration Time"}, rows[0])
	assert.Equal(t, []string{"Asha Rao", "asha@example.com", "+91 98765 43210", "2026-03-14", "09:30:00"}, rows[1])
	// Missing phone renders as the placeholder
	assert.Equal(t, "N/A", rows[2][2])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.NotEmpty(t, summary)
	assert.Equal(t, "Event", summary[0][0])
	last := summary[len(summary)-1]
	assert.Equal(t, "Total Attendees", last[0])
	assert.Equal(t, "2", last[1])
}

func TestExportCSV(t *testing.T) {
	ev := exportFixture()

	data, filename, contentType, err := exportByFormat(ev, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "Go_Systems_Workshop.csv", filename)
	assert.Equal(t, "text/csv", contentType)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "asha@example.com", records[1][1])
	assert.Equal(t, "N/A", records[2][2])
}

func TestExportPDF(t *testing.T) {
	ev := exportFixture()

	data, filename, contentType, err := exportByFormat(ev, FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "Go_Systems_Workshop.pdf", filename)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportDefaultsToExcel(t *testing.T) {
	_, filename, _, err := exportByFormat(exportFixture(), "")
	require.NoError(t, err)
	assert.Equal(t, "Go_Systems_Workshop.xlsx", filename)
}

func TestExportUnsupportedFormat(t *testing.T) {
	_, _, _, err := exportByFormat(exportFixture(), "docx")
	assert.True(t, event.IsValidation(err))
}
