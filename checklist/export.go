package checklist

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteRecapCSV renders recap rows as CSV with the fixed header
// date,done,total,percent,fullDone. fullDone is rendered yes/no and any
// field containing a comma, quote, or newline gets RFC 4180 quoting via
// encoding/csv.
func WriteRecapCSV(w io.Writer, rows []RecapRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "done", "total", "percent", "fullDone"}); err != nil {
		return err
	}
	for _, r := range rows {
		full := "no"
		if r.FullDone {
			full = "yes"
		}
		record := []string{
			r.Date,
			strconv.Itoa(r.Done),
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Percent),
			full,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
