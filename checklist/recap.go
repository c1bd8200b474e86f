package checklist

import (
	"context"
	"math"
)

// RecapRow is the derived completion record for one calendar day. It is
// never persisted.
type RecapRow struct {
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Done     int    `json:"done"`
	Percent  int    `json:"percent"`
	FullDone bool   `json:"full_done"`
}

func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// Recap aggregates the trailing windowDays calendar days ending today,
// most recent first. Days with no stored snapshot count as empty (total=0,
// percent=0, not fully done). A store failure degrades to all-zero rows.
func (s *Service) Recap(ctx context.Context, userID uint, windowDays int) []RecapRow {
	if windowDays <= 0 {
		windowDays = s.recapDays
	}
	keys := LastNDayKeys(windowDays, s.now())
	from := keys[len(keys)-1]
	to := keys[0]

	byDay, err := s.dailies.LoadRange(ctx, userID, from, to)
	if err != nil {
		s.warn("recap load range", err)
		byDay = nil
	}

	rows := make([]RecapRow, 0, len(keys))
	for _, key := range keys {
		items := byDay[key]
		total := len(items)
		done := 0
		for _, item := range items {
			if item.Done {
				done++
			}
		}
		rows = append(rows, RecapRow{
			Date:     key,
			Total:    total,
			Done:     done,
			Percent:  percent(done, total),
			FullDone: total > 0 && done == total,
		})
	}
	return rows
}

// RecapEmpty reports whether every row of a recap has no tasks at all;
// the presentation layer shows a placeholder in that case.
func RecapEmpty(rows []RecapRow) bool {
	for _, r := range rows {
		if r.Total != 0 {
			return false
		}
	}
	return true
}
