package checklist

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harian/checklistd/models"
	"github.com/harian/checklistd/store"
	"github.com/harian/checklistd/utils"
)

// Service implements the checklist core: template management, daily
// seeding, and the recap/streak computations. All store failures degrade
// to usable in-memory state; they are reported to the logger, never
// surfaced as blocking errors.
type Service struct {
	templates  store.TemplateStore
	dailies    store.DailyStore
	log        *zap.SugaredLogger
	now        Clock
	recapDays  int
	streakDays int
}

// NewService wires the core over its collaborators.
func NewService(templates store.TemplateStore, dailies store.DailyStore, log *zap.SugaredLogger, recapDays, streakDays int) *Service {
	if recapDays <= 0 {
		recapDays = 7
	}
	if streakDays <= 0 {
		streakDays = 30
	}
	return &Service{
		templates:  templates,
		dailies:    dailies,
		log:        log,
		now:        time.Now,
		recapDays:  recapDays,
		streakDays: streakDays,
	}
}

// WithClock replaces the time source. Used by tests to fix "today".
func (s *Service) WithClock(c Clock) *Service {
	s.now = c
	return s
}

// RecapDays returns the configured default recap window.
func (s *Service) RecapDays() int { return s.recapDays }

// StreakDays returns the configured streak window.
func (s *Service) StreakDays() int { return s.streakDays }

// TodayKey returns the current day key.
func (s *Service) TodayKey() string { return DayKey(s.now()) }

// DefaultTemplate returns the built-in starter template with fresh ids.
func DefaultTemplate() models.TemplateItems {
	return models.TemplateItems{
		{ID: uuid.NewString(), Title: "Cek email masuk", Priority: models.PriorityMed},
		{ID: uuid.NewString(), Title: "Follow up yang pending", Priority: models.PriorityHigh},
		{ID: uuid.NewString(), Title: "Rapikan dokumen kantor", Priority: models.PriorityLow},
	}
}

// BuildFromTemplate synthesizes a fresh day list: one task per template
// item, done=false, template order preserved, new independent ids.
func BuildFromTemplate(t models.TemplateItems) models.TaskItems {
	out := make(models.TaskItems, 0, len(t))
	for _, item := range t {
		out = append(out, models.TaskItem{
			ID:       uuid.NewString(),
			Title:    item.Title,
			Done:     false,
			Priority: models.NormalizePriority(item.Priority),
		})
	}
	return out
}

// cleanTitle strips markup and surrounding whitespace. An empty result
// means the mutation is a silent no-op.
func cleanTitle(raw string) string {
	return strings.TrimSpace(utils.SanitizeTitle(raw))
}

func (s *Service) warn(op string, err error) {
	if s.log != nil {
		s.log.Warnf("%s failed: %v", op, err)
	}
}

// Template returns the user's template, creating and persisting the
// default one on first use. Load failures fall back to an unpersisted
// default so the caller always has a usable template.
func (s *Service) Template(ctx context.Context, userID uint) models.TemplateItems {
	items, err := s.templates.Load(ctx, userID)
	if err != nil {
		s.warn("template load", err)
		return DefaultTemplate()
	}
	if len(items) == 0 {
		seed := DefaultTemplate()
		if err := s.templates.Save(ctx, userID, seed); err != nil {
			s.warn("template seed save", err)
		}
		return seed
	}
	return items
}

// SaveTemplate replaces the user's template. Every item passes the same
// gate as the single-item mutations: titles are sanitized and trimmed,
// empty-after-trim items are dropped, priorities normalized. Items without
// an id, or reusing one already taken, get a fresh id so later edits and
// removals address exactly one entry. Save failures are logged; the
// in-memory list remains the session's source of truth either way.
func (s *Service) SaveTemplate(ctx context.Context, userID uint, items models.TemplateItems) models.TemplateItems {
	next := make(models.TemplateItems, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		t := cleanTitle(item.Title)
		if t == "" {
			continue
		}
		if item.ID == "" || seen[item.ID] {
			item.ID = uuid.NewString()
		}
		seen[item.ID] = true
		item.Title = t
		item.Priority = models.NormalizePriority(item.Priority)
		next = append(next, item)
	}
	if err := s.templates.Save(ctx, userID, next); err != nil {
		s.warn("template save", err)
	}
	return next
}

// AddTemplateItem prepends a new template entry. Empty titles are ignored.
// The change affects future seeding only.
func (s *Service) AddTemplateItem(ctx context.Context, userID uint, title string, priority models.Priority) models.TemplateItems {
	current := s.Template(ctx, userID)
	t := cleanTitle(title)
	if t == "" {
		return current
	}
	next := append(models.TemplateItems{{
		ID:       uuid.NewString(),
		Title:    t,
		Priority: models.NormalizePriority(priority),
	}}, current...)
	return s.SaveTemplate(ctx, userID, next)
}

// EditTemplateItem updates title/priority of one entry. Unknown ids and
// empty titles are no-ops.
func (s *Service) EditTemplateItem(ctx context.Context, userID uint, id, title string, priority models.Priority) models.TemplateItems {
	current := s.Template(ctx, userID)
	t := cleanTitle(title)
	if t == "" {
		return current
	}
	changed := false
	for i := range current {
		if current[i].ID == id {
			current[i].Title = t
			current[i].Priority = models.NormalizePriority(priority)
			changed = true
			break
		}
	}
	if !changed {
		return current
	}
	return s.SaveTemplate(ctx, userID, current)
}

// RemoveTemplateItem deletes one entry by id.
func (s *Service) RemoveTemplateItem(ctx context.Context, userID uint, id string) models.TemplateItems {
	current := s.Template(ctx, userID)
	next := make(models.TemplateItems, 0, len(current))
	for _, item := range current {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if len(next) == len(current) {
		return current
	}
	return s.SaveTemplate(ctx, userID, next)
}

// ResetTemplate discards the user's template and restores the default.
func (s *Service) ResetTemplate(ctx context.Context, userID uint) models.TemplateItems {
	return s.SaveTemplate(ctx, userID, DefaultTemplate())
}

// Today runs the seeding engine for the current day: an existing
// non-empty snapshot is used as-is (never reseeded, even after template
// edits); otherwise a fresh list is synthesized from the template and
// persisted immediately. On store failure the synthesis is returned
// unpersisted so the caller stays usable.
func (s *Service) Today(ctx context.Context, userID uint) (string, models.TaskItems) {
	day := s.TodayKey()
	existing, err := s.dailies.Load(ctx, userID, day)
	if err != nil {
		s.warn("daily load", err)
		return day, BuildFromTemplate(s.Template(ctx, userID))
	}
	if len(existing) > 0 {
		return day, existing
	}
	seed := BuildFromTemplate(s.Template(ctx, userID))
	if err := s.dailies.Save(ctx, userID, day, seed); err != nil {
		s.warn("daily seed save", err)
	}
	return day, seed
}

// saveToday persists the full snapshot for today. Failures are logged and
// the in-memory list returned regardless.
func (s *Service) saveToday(ctx context.Context, userID uint, day string, items models.TaskItems) models.TaskItems {
	if err := s.dailies.Save(ctx, userID, day, items); err != nil {
		s.warn("daily save", err)
	}
	return items
}

// ToggleTask flips the done state of one task.
func (s *Service) ToggleTask(ctx context.Context, userID uint, id string) models.TaskItems {
	day, items := s.Today(ctx, userID)
	changed := false
	for i := range items {
		if items[i].ID == id {
			items[i].Done = !items[i].Done
			changed = true
			break
		}
	}
	if !changed {
		return items
	}
	return s.saveToday(ctx, userID, day, items)
}

// AddTask prepends a new task to today's list. Empty titles are ignored.
func (s *Service) AddTask(ctx context.Context, userID uint, title string, priority models.Priority) models.TaskItems {
	day, items := s.Today(ctx, userID)
	t := cleanTitle(title)
	if t == "" {
		return items
	}
	next := append(models.TaskItems{{
		ID:       uuid.NewString(),
		Title:    t,
		Done:     false,
		Priority: models.NormalizePriority(priority),
	}}, items...)
	return s.saveToday(ctx, userID, day, next)
}

// EditTask updates title/priority of one of today's tasks.
func (s *Service) EditTask(ctx context.Context, userID uint, id, title string, priority models.Priority) models.TaskItems {
	day, items := s.Today(ctx, userID)
	t := cleanTitle(title)
	if t == "" {
		return items
	}
	changed := false
	for i := range items {
		if items[i].ID == id {
			items[i].Title = t
			items[i].Priority = models.NormalizePriority(priority)
			changed = true
			break
		}
	}
	if !changed {
		return items
	}
	return s.saveToday(ctx, userID, day, items)
}

// RemoveTask deletes one of today's tasks.
func (s *Service) RemoveTask(ctx context.Context, userID uint, id string) models.TaskItems {
	day, items := s.Today(ctx, userID)
	next := make(models.TaskItems, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			next = append(next, item)
		}
	}
	if len(next) == len(items) {
		return items
	}
	return s.saveToday(ctx, userID, day, next)
}

// CompleteAll marks every task of today done.
func (s *Service) CompleteAll(ctx context.Context, userID uint) models.TaskItems {
	day, items := s.Today(ctx, userID)
	for i := range items {
		items[i].Done = true
	}
	return s.saveToday(ctx, userID, day, items)
}

// UncompleteAll clears the done state of every task of today.
func (s *Service) UncompleteAll(ctx context.Context, userID uint) models.TaskItems {
	day, items := s.Today(ctx, userID)
	for i := range items {
		items[i].Done = false
	}
	return s.saveToday(ctx, userID, day, items)
}

// ResetToday unconditionally replaces today's list with a fresh synthesis
// from the current template, discarding progress. Callers must confirm
// before invoking; this is irreversible.
func (s *Service) ResetToday(ctx context.Context, userID uint) models.TaskItems {
	day := s.TodayKey()
	fresh := BuildFromTemplate(s.Template(ctx, userID))
	return s.saveToday(ctx, userID, day, fresh)
}

// Summary aggregates today's list for the dashboard cards: counts overall
// and undone-by-priority, plus a progress percent.
type Summary struct {
	Total   int `json:"total"`
	Done    int `json:"done"`
	Undone  int `json:"undone"`
	High    int `json:"high"`
	Med     int `json:"med"`
	Low     int `json:"low"`
	Percent int `json:"percent"`
}

// Summarize computes the Summary of a task list.
func Summarize(items models.TaskItems) Summary {
	var sum Summary
	sum.Total = len(items)
	for _, item := range items {
		if item.Done {
			sum.Done++
			continue
		}
		sum.Undone++
		switch models.NormalizePriority(item.Priority) {
		case models.PriorityHigh:
			sum.High++
		case models.PriorityMed:
			sum.Med++
		case models.PriorityLow:
			sum.Low++
		}
	}
	sum.Percent = percent(sum.Done, sum.Total)
	return sum
}
