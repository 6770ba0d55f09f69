package drops

import (
	"strings"
	"testing"
)

func TestParseScheduleCSVSuccess(t *testing.T) {
	csvData := "id,date,title,platform,type,hot,region,msrp\n" +
		"prismatic-evolutions,2025-06-03,Prismatic Evolutions,Pokemon Center,New Set,true,,\n" +
		"charizard-collection,2025-06-05,Charizard ex Premium Collection,Target,Limited,false,NA,$49.99\n"

	entries, err := ParseScheduleCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("expected parse to succeed, got error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "prismatic-evolutions" || !entries[0].Hot {
		t.Fatalf("unexpected first row parsed: %+v", entries[0])
	}
	if entries[0].Region != "Global" {
		t.Fatalf("empty region should default to Global, got %q", entries[0].Region)
	}
	if entries[1].MSRP != "$49.99" || entries[1].Region != "NA" {
		t.Fatalf("unexpected second row parsed: %+v", entries[1])
	}
}

func TestParseScheduleCSVMissingRequiredColumn(t *testing.T) {
	csvData := `date,title,platform
2025-06-03,Some Drop,Target
`

	_, err := ParseScheduleCSV(strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected missing required column error, got nil")
	}
}

func TestParseScheduleCSVRejectsBadDate(t *testing.T) {
	csvData := "id,date,title,platform,type\n" +
		"x,06/03/2025,Some Drop,Target,Restock\n"

	_, err := ParseScheduleCSV(strings.NewReader(csvData))
	if err == nil {
		t.Fatal("expected bad date error, got nil")
	}
}
