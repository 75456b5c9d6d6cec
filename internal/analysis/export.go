package analysis

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

const (
	csvMIME = "text/csv"
	// The spreadsheet export is the same delimited text under an Excel
	// label. Kept as-is: consumers rely on the .xlsx name opening in Excel.
	spreadsheetMIME = "application/vnd.ms-excel"

	exportNamePrefix = "instagram-analysis-"
	exportDateLayout = "2006-01-02"
)

var exportHeader = []string{
	"Handle",
	"Name",
	"Followers",
	"Average Views",
	"Category",
	"Engagement Rate (%)",
	"Location",
}

// File is a downloadable export artifact.
type File struct {
	Name    string
	MIME    string
	Content []byte
}

// ExportCSV serializes the current sorted projection as comma-separated text.
func (c *Controller) ExportCSV() (File, error) {
	return c.export("csv", csvMIME)
}

// ExportSpreadsheet emits identical content to ExportCSV under an Excel MIME
// type and extension.
func (c *Controller) ExportSpreadsheet() (File, error) {
	return c.export("xlsx", spreadsheetMIME)
}

func (c *Controller) export(extension, mime string) (File, error) {
	var buf bytes.Buffer

	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return File{}, fmt.Errorf("write header: %w", err)
	}

	for _, row := range c.SortedResults() {
		if err := writer.Write(exportRecord(row)); err != nil {
			return File{}, fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return File{}, fmt.Errorf("flush csv: %w", err)
	}

	name := exportNamePrefix + time.Now().Format(exportDateLayout) + "." + extension

	return File{
		Name:    name,
		MIME:    mime,
		Content: buf.Bytes(),
	}, nil
}

// exportRecord renders one table row. Error rows carry their original handle
// with zeroed numerics and blank labels, matching the table rendering.
func exportRecord(row Row) []string {
	return []string{
		row.Handle,
		row.Metrics.Name,
		strconv.Itoa(row.Metrics.Followers),
		strconv.Itoa(row.Metrics.AverageViews),
		row.Metrics.Category,
		strconv.FormatFloat(row.Metrics.EngagementRate, 'f', 2, 64),
		row.Metrics.Location,
	}
}
