package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harian/checklistd/checklist"
	"github.com/harian/checklistd/models"
	"github.com/harian/checklistd/utils"
)

// TemplateController exposes the reusable task template.
type TemplateController struct {
	svc *checklist.Service
}

// NewTemplateController creates a new controller instance.
func NewTemplateController(svc *checklist.Service) *TemplateController {
	return &TemplateController{svc: svc}
}

type templateItemRequest struct {
	Title    string          `json:"title"`
	Priority models.Priority `json:"priority"`
}

type templateReplaceRequest struct {
	Items models.TemplateItems `json:"items" binding:"required"`
}

type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

// Get returns the user's template, seeding the default on first use.
func (t *TemplateController) Get(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	items := t.svc.Template(ctx.Request.Context(), userID)
	utils.Success(ctx, gin.H{"items": items})
}

// Replace overwrites the whole template.
func (t *TemplateController) Replace(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	var req templateReplaceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid template payload")
		return
	}
	items := t.svc.SaveTemplate(ctx.Request.Context(), userID, req.Items)
	utils.Success(ctx, gin.H{"items": items})
}

// AddItem prepends a template entry. Empty titles are a silent no-op.
func (t *TemplateController) AddItem(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	var req templateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid item payload")
		return
	}
	items := t.svc.AddTemplateItem(ctx.Request.Context(), userID, req.Title, req.Priority)
	utils.Success(ctx, gin.H{"items": items})
}

// EditItem updates one template entry's title and priority.
func (t *TemplateController) EditItem(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	var req templateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40011, "invalid item payload")
		return
	}
	items := t.svc.EditTemplateItem(ctx.Request.Context(), userID, ctx.Param("id"), req.Title, req.Priority)
	utils.Success(ctx, gin.H{"items": items})
}

// RemoveItem deletes one template entry.
func (t *TemplateController) RemoveItem(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	items := t.svc.RemoveTemplateItem(ctx.Request.Context(), userID, ctx.Param("id"))
	utils.Success(ctx, gin.H{"items": items})
}

// Reset restores the built-in default template. Destructive, so the
// request must carry confirm=true.
func (t *TemplateController) Reset(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}
	var req confirmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || !req.Confirm {
		utils.Error(ctx, http.StatusBadRequest, 40012, "confirmation required")
		return
	}
	items := t.svc.ResetTemplate(ctx.Request.Context(), userID)
	utils.Success(ctx, gin.H{"items": items})
}
