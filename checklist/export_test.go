package checklist

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
)

func TestWriteRecapCSV(t *testing.T) {
	t.Run("header and row layout", func(t *testing.T) {
		rows := []RecapRow{
			{Date: "2024-01-01", Total: 5, Done: 3, Percent: 60, FullDone: false},
		}

		var buf bytes.Buffer
		if err := WriteRecapCSV(&buf, rows); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		want := "date,done,total,percent,fullDone\n2024-01-01,3,5,60,no\n"
		if buf.String() != want {
			t.Errorf("unexpected output:\n got %q\nwant %q", buf.String(), want)
		}
	})

	t.Run("fully done renders yes", func(t *testing.T) {
		rows := []RecapRow{
			{Date: "2024-01-02", Total: 2, Done: 2, Percent: 100, FullDone: true},
		}

		var buf bytes.Buffer
		if err := WriteRecapCSV(&buf, rows); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if !strings.Contains(buf.String(), "2024-01-02,2,2,100,yes\n") {
			t.Errorf("expected yes row, got %q", buf.String())
		}
	})

	t.Run("no rows still writes the header", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteRecapCSV(&buf, nil); err != nil {
			t.Fatalf("write failed: %v", err)
		}
		if buf.String() != "date,done,total,percent,fullDone\n" {
			t.Errorf("unexpected header-only output %q", buf.String())
		}
	})

	t.Run("output parses back", func(t *testing.T) {
		rows := []RecapRow{
			{Date: "2024-01-03", Total: 4, Done: 1, Percent: 25},
			{Date: "2024-01-02", Total: 0, Done: 0, Percent: 0},
		}

		var buf bytes.Buffer
		if err := WriteRecapCSV(&buf, rows); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		records, err := csv.NewReader(&buf).ReadAll()
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected header + 2 rows, got %d records", len(records))
		}
		if records[1][0] != "2024-01-03" || records[1][3] != "25" {
			t.Errorf("unexpected first row %v", records[1])
		}
		if records[2][4] != "no" {
			t.Errorf("empty day should render no, got %v", records[2])
		}
	})
}
