package drops

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// ParseScheduleCSV reads administrative drop-schedule rows. Required columns:
// id, date, title, platform, type. Optional: hot, category, region, msrp, notes.
func ParseScheduleCSV(reader io.Reader) ([]Entry, error) {
	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv must include a header row and at least one data row")
	}

	headers := make(map[string]int, len(records[0]))
	for idx, col := range records[0] {
		headers[strings.ToLower(strings.TrimSpace(col))] = idx
	}

	required := []string{"id", "date", "title", "platform", "type"}
	for _, col := range required {
		if _, ok := headers[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	entries := make([]Entry, 0, len(records)-1)
	for i, record := range records[1:] {
		lineNo := i + 2

		entry := Entry{
			ID:       strings.TrimSpace(readValue(record, headers["id"])),
			Date:     strings.TrimSpace(readValue(record, headers["date"])),
			Title:    strings.TrimSpace(readValue(record, headers["title"])),
			Platform: strings.TrimSpace(readValue(record, headers["platform"])),
			Type:     strings.TrimSpace(readValue(record, headers["type"])),
		}

		if entry.ID == "" {
			return nil, fmt.Errorf("line %d id: value is required", lineNo)
		}
		if entry.Title == "" {
			return nil, fmt.Errorf("line %d title: value is required", lineNo)
		}
		if _, err := time.Parse(dateLayout, entry.Date); err != nil {
			return nil, fmt.Errorf("line %d date: must be YYYY-MM-DD, got %q", lineNo, entry.Date)
		}

		if idx, ok := headers["hot"]; ok {
			value := strings.ToLower(strings.TrimSpace(readValue(record, idx)))
			entry.Hot = value == "true" || value == "yes" || value == "1"
		}
		if idx, ok := headers["category"]; ok {
			entry.Category = strings.TrimSpace(readValue(record, idx))
		}
		if idx, ok := headers["region"]; ok {
			entry.Region = strings.TrimSpace(readValue(record, idx))
		}
		if entry.Region == "" {
			entry.Region = "Global"
		}
		if idx, ok := headers["msrp"]; ok {
			entry.MSRP = strings.TrimSpace(readValue(record, idx))
		}
		if idx, ok := headers["notes"]; ok {
			entry.Notes = strings.TrimSpace(readValue(record, idx))
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func readValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
