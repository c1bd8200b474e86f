package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harian/checklistd/checklist"
	"github.com/harian/checklistd/models"
	"github.com/harian/checklistd/utils"
)

// DailyController exposes today's checklist: the seeding engine plus all
// task mutations. Every mutation rewrites the full snapshot and recomputes
// the streak, since today's completion state feeds it.
type DailyController struct {
	svc *checklist.Service
}

// NewDailyController creates a new controller instance.
func NewDailyController(svc *checklist.Service) *DailyController {
	return &DailyController{svc: svc}
}

type taskRequest struct {
	Title    string          `json:"title"`
	Priority models.Priority `json:"priority"`
}

func (d *DailyController) respondToday(ctx *gin.Context, userID uint, day string, tasks models.TaskItems) {
	utils.Success(ctx, gin.H{
		"day":     day,
		"tasks":   tasks,
		"summary": checklist.Summarize(tasks),
		"streak":  d.svc.Streak(ctx.Request.Context(), userID),
	})
}

// invalidateDerived drops cached recap views after a mutation.
func invalidateDerived(userID uint) {
	utils.InvalidateByPrefix(fmt.Sprintf("recap:%d:", userID))
}

// Today runs the seeding engine and returns the day's list.
func (d *DailyController) Today(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	day, tasks := d.svc.Today(ctx.Request.Context(), userID)
	d.respondToday(ctx, userID, day, tasks)
}

// AddTask prepends a task to today's list.
func (d *DailyController) AddTask(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	var req taskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid task payload")
		return
	}
	tasks := d.svc.AddTask(ctx.Request.Context(), userID, req.Title, req.Priority)
	invalidateDerived(userID)
	d.respondToday(ctx, userID, d.svc.TodayKey(), tasks)
}

// EditTask updates one task's title and priority.
func (d *DailyController) EditTask(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	var req taskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "invalid task payload")
		return
	}
	tasks := d.svc.EditTask(ctx.Request.Context(), userID, ctx.Param("id"), req.Title, req.Priority)
	invalidateDerived(userID)
	d.respondToday(ctx, userID, d.svc.TodayKey(), tasks)
}

// ToggleTask flips one task's done state.
func (d *DailyController) ToggleTask(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	tasks := d.svc.ToggleTask(ctx.Request.Context(), userID, ctx.Param("id"))
	invalidateDerived(userID)
	d.respondToday(ctx, userID, d.svc.TodayKey(), tasks)
}

// RemoveTask deletes one task from today's list.
func (d *DailyController) RemoveTask(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	tasks := d.svc.RemoveTask(ctx.Request.Context(), userID, ctx.Param("id"))
	invalidateDerived(userID)
	d.respondToday(ctx, userID, d.svc.TodayKey(), tasks)
}

// CompleteAll marks every task done.
func (d *DailyController) CompleteAll(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	tasks := d.svc.CompleteAll(ctx.Request.Context(), userID)
	invalidateDerived(userID)
	d.respondToday(ctx, userID, d.svc.TodayKey(), tasks)
}

// UncompleteAll clears every task's done state.
func (d *DailyController) UncompleteAll(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	tasks := d.svc.UncompleteAll(ctx.Request.Context(), userID)
	invalidateDerived(userID)
	d.respondToday(ctx, userID, d.svc.TodayKey(), tasks)
}

// Reset replaces today's list from the template, discarding progress.
// Requires confirm=true; irreversible.
func (d *DailyController) Reset(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	var req confirmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || !req.Confirm {
		utils.Error(ctx, http.StatusBadRequest, 40021, "confirmation required")
		return
	}
	tasks := d.svc.ResetToday(ctx.Request.Context(), userID)
	invalidateDerived(userID)
	d.respondToday(ctx, userID, d.svc.TodayKey(), tasks)
}
