package checklist

import "context"

// Streak counts the consecutive fully-done days ending at and including
// today over the fixed streak window. The scan walks backward in strict
// calendar order and stops at the first day that is not fully done — a day
// with zero tasks breaks the streak too. Days beyond the window are never
// counted. Store failures degrade to 0.
func (s *Service) Streak(ctx context.Context, userID uint) int {
	rows := s.Recap(ctx, userID, s.streakDays)
	streak := 0
	for _, row := range rows {
		if !row.FullDone {
			break
		}
		streak++
	}
	return streak
}
