package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harian/checklistd/checklist"
	"github.com/harian/checklistd/utils"
)

// RecapController serves the completion recap, the streak counter, and the
// CSV export.
type RecapController struct {
	svc *checklist.Service
}

// NewRecapController creates a new controller instance.
func NewRecapController(svc *checklist.Service) *RecapController {
	return &RecapController{svc: svc}
}

const recapCacheTTL = 5 * time.Minute

type recapPayload struct {
	Days  int                  `json:"days"`
	Rows  []checklist.RecapRow `json:"rows"`
	Empty bool                 `json:"empty"`
}

// windowDays clamps the requested window to [1, streak window].
func (r *RecapController) windowDays(ctx *gin.Context) int {
	days := r.svc.RecapDays()
	if raw := ctx.Query("days"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			days = v
		}
	}
	if days > r.svc.StreakDays() {
		days = r.svc.StreakDays()
	}
	return days
}

// Recap returns per-day completion rows, most recent first. Responses are
// cached briefly per (user, day, window) and dropped on any mutation.
func (r *RecapController) Recap(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	days := r.windowDays(ctx)

	cacheKey := fmt.Sprintf("recap:%d:%s:%d", userID, r.svc.TodayKey(), days)
	if b, hit := utils.CacheGetBytes(cacheKey); hit {
		var payload recapPayload
		if err := json.Unmarshal(b, &payload); err == nil {
			utils.Success(ctx, payload)
			return
		}
	}

	rows := r.svc.Recap(ctx.Request.Context(), userID, days)
	payload := recapPayload{
		Days:  days,
		Rows:  rows,
		Empty: checklist.RecapEmpty(rows),
	}
	utils.CacheSetJSON(cacheKey, payload, recapCacheTTL)
	utils.Success(ctx, payload)
}

// Export streams the recap window as a CSV download.
func (r *RecapController) Export(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	days := r.windowDays(ctx)
	rows := r.svc.Recap(ctx.Request.Context(), userID, days)

	var buf bytes.Buffer
	if err := checklist.WriteRecapCSV(&buf, rows); err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to render csv")
		return
	}

	filename := fmt.Sprintf("rekap_%dhari_%s.csv", days, r.svc.TodayKey())
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Streak returns the current run of fully-done days ending today. Always
// computed fresh so the latest toggle is reflected.
func (r *RecapController) Streak(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	utils.Success(ctx, gin.H{
		"streak":      r.svc.Streak(ctx.Request.Context(), userID),
		"window_days": r.svc.StreakDays(),
	})
}
