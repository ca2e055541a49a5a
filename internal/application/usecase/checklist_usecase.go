package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/domain"
	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
	"github.com/safebite/safebite-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ChecklistUseCase manages recurring sheets and their completion state.
// Editing the sheet structure and ticking subtasks are separate rights:
// admins shape the sheets, the floor completes them.
type ChecklistUseCase struct {
	checklistRepo repository.ChecklistRepository
	locationRepo  repository.LocationRepository
	now           func() time.Time
}

func NewChecklistUseCase(checklistRepo repository.ChecklistRepository, locationRepo repository.LocationRepository) *ChecklistUseCase {
	return &ChecklistUseCase{checklistRepo: checklistRepo, locationRepo: locationRepo, now: time.Now}
}

// resolveLocation loads a location and checks scope access.
func (uc *ChecklistUseCase) resolveLocation(ctx context.Context, scope rbac.Scope, locationID string) (*entity.Location, error) {
	loc, err := uc.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.CanAccessLocation(loc.CompanyID, loc.ID) {
		return nil, domain.ErrLocationDenied
	}
	return loc, nil
}

// Create builds a new sheet with its full task tree.
func (uc *ChecklistUseCase) Create(ctx context.Context, scope rbac.Scope, in dto.CreateChecklistRequest) (*dto.ChecklistResponse, error) {
	if !rbac.Allows(scope.Role, rbac.CapCreateChecklists) {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidFrequency(in.Frequency) || in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.resolveLocation(ctx, scope, in.LocationID); err != nil {
		return nil, err
	}

	now := uc.now()
	cl := &entity.Checklist{
		ID:         uuid.New().String(),
		LocationID: in.LocationID,
		Title:      in.Title,
		Frequency:  in.Frequency,
		Tasks:      buildTaskTree(in.Tasks),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for i := range cl.Tasks {
		cl.Tasks[i].ChecklistID = cl.ID
	}
	if err := uc.checklistRepo.Create(ctx, cl); err != nil {
		return nil, err
	}
	return toChecklistResponse(cl, nil), nil
}

// GetByID returns one sheet with its tree.
func (uc *ChecklistUseCase) GetByID(ctx context.Context, scope rbac.Scope, id string) (*dto.ChecklistResponse, error) {
	cl, err := uc.authorizeRead(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	return toChecklistResponse(cl, nil), nil
}

// Update replaces title, frequency and, when Tasks is provided, the whole
// task tree. Replacing the tree orphans old completions, which is the
// intended reset when a sheet is restructured.
func (uc *ChecklistUseCase) Update(ctx context.Context, scope rbac.Scope, id string, in dto.UpdateChecklistRequest) (*dto.ChecklistResponse, error) {
	if !rbac.Allows(scope.Role, rbac.CapEditChecklists) {
		return nil, domain.ErrForbidden
	}
	cl, err := uc.authorizeRead(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, domain.ErrInvalidInput
		}
		cl.Title = *in.Title
	}
	if in.Frequency != nil {
		if !entity.ValidFrequency(*in.Frequency) {
			return nil, domain.ErrInvalidInput
		}
		cl.Frequency = *in.Frequency
	}
	if in.Tasks != nil {
		cl.Tasks = buildTaskTree(*in.Tasks)
		for i := range cl.Tasks {
			cl.Tasks[i].ChecklistID = cl.ID
		}
	}
	cl.UpdatedAt = uc.now()
	if err := uc.checklistRepo.Update(ctx, cl); err != nil {
		return nil, err
	}
	return toChecklistResponse(cl, nil), nil
}

// Delete removes a sheet and its completion history.
func (uc *ChecklistUseCase) Delete(ctx context.Context, scope rbac.Scope, id string) error {
	if !rbac.Allows(scope.Role, rbac.CapDeleteChecklists) {
		return domain.ErrForbidden
	}
	if _, err := uc.authorizeRead(ctx, scope, id); err != nil {
		return err
	}
	return uc.checklistRepo.Delete(ctx, id)
}

// Board returns the sheet view for a location: every checklist with the
// caller's completion state for today, plus per-frequency progress. Daily
// sheets sort Opening, PM, Closing.
func (uc *ChecklistUseCase) Board(ctx context.Context, scope rbac.Scope, userID, locationID string) (*dto.ChecklistBoardResponse, error) {
	if !rbac.Allows(scope.Role, rbac.CapViewAllRecords) {
		return nil, domain.ErrForbidden
	}
	if _, err := uc.resolveLocation(ctx, scope, locationID); err != nil {
		return nil, err
	}

	lists, err := uc.checklistRepo.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	today := dateOnly(uc.now())
	doneIDs, err := uc.checklistRepo.ListCompletionsByUserDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	done := make(map[string]bool, len(doneIDs))
	for _, id := range doneIDs {
		done[id] = true
	}

	sortChecklists(lists)

	out := &dto.ChecklistBoardResponse{
		Date:       today.Format(dateLayout),
		Checklists: make([]dto.ChecklistResponse, 0, len(lists)),
		Progress:   computeProgress(lists, done),
	}
	for _, cl := range lists {
		out.Checklists = append(out.Checklists, *toChecklistResponse(cl, done))
	}
	return out, nil
}

// ToggleSubtask ticks or unticks a subtask of a sheet for a date. The
// subtask must belong to the named checklist.
func (uc *ChecklistUseCase) ToggleSubtask(ctx context.Context, scope rbac.Scope, userID, checklistID, subtaskID string, in dto.ToggleSubtaskRequest) error {
	if !rbac.Allows(scope.Role, rbac.CapCompleteChecklists) {
		return domain.ErrForbidden
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return domain.ErrInvalidInput
	}
	cl, err := uc.authorizeRead(ctx, scope, checklistID)
	if err != nil {
		return err
	}
	if !containsSubtask(cl, subtaskID) {
		return domain.ErrNotFound
	}

	comp := &entity.SubtaskCompletion{
		ID:         uuid.New().String(),
		SubtaskID:  subtaskID,
		UserID:     userID,
		LocationID: cl.LocationID,
		Date:       date,
		Completed:  in.Completed,
	}
	if in.Completed {
		ts := uc.now()
		comp.CompletedAt = &ts
	}
	return uc.checklistRepo.UpsertCompletion(ctx, comp)
}

// Calendar returns a per-day completion status for a month at a location,
// aggregated across all users. A day with no ticks against a location that
// has tasks reads "none"; a location without any subtasks reads "no_tasks".
func (uc *ChecklistUseCase) Calendar(ctx context.Context, scope rbac.Scope, locationID string, year int, month time.Month) (*dto.CalendarResponse, error) {
	if !rbac.Allows(scope.Role, rbac.CapViewAllRecords) {
		return nil, domain.ErrForbidden
	}
	if _, err := uc.resolveLocation(ctx, scope, locationID); err != nil {
		return nil, err
	}

	lists, err := uc.checklistRepo.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, cl := range lists {
		for _, t := range cl.Tasks {
			total += len(t.Subtasks)
		}
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	comps, err := uc.checklistRepo.ListCompletionsBetween(ctx, locationID, start, end)
	if err != nil {
		return nil, err
	}

	// distinct subtasks ticked per day; double ticks by two users count once
	perDay := make(map[string]map[string]bool)
	for _, c := range comps {
		if !c.Completed {
			continue
		}
		key := c.Date.Format(dateLayout)
		if perDay[key] == nil {
			perDay[key] = make(map[string]bool)
		}
		perDay[key][c.SubtaskID] = true
	}

	resp := &dto.CalendarResponse{Year: year, Month: int(month)}
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		doneCount := len(perDay[key])
		day := dto.CalendarDayStatus{Date: key, Done: doneCount, Total: total}
		switch {
		case total == 0:
			day.Status = "no_tasks"
		case doneCount == 0:
			day.Status = "none"
		case doneCount >= total:
			day.Status = "complete"
		default:
			day.Status = "partial"
		}
		resp.Days = append(resp.Days, day)
	}
	return resp, nil
}

// authorizeRead loads a checklist and checks the scope can see its location.
func (uc *ChecklistUseCase) authorizeRead(ctx context.Context, scope rbac.Scope, id string) (*entity.Checklist, error) {
	cl, err := uc.checklistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, domain.ErrNotFound
	}
	if _, err := uc.resolveLocation(ctx, scope, cl.LocationID); err != nil {
		return nil, err
	}
	return cl, nil
}

// buildTaskTree assigns ids and positions to an input tree.
func buildTaskTree(in []dto.TaskInput) []entity.ChecklistTask {
	tasks := make([]entity.ChecklistTask, 0, len(in))
	for i, t := range in {
		task := entity.ChecklistTask{
			ID:          uuid.New().String(),
			Description: t.Description,
			Position:    i,
			Subtasks:    make([]entity.ChecklistSubtask, 0, len(t.Subtasks)),
		}
		for j, s := range t.Subtasks {
			task.Subtasks = append(task.Subtasks, entity.ChecklistSubtask{
				ID:          uuid.New().String(),
				TaskID:      task.ID,
				Description: s.Description,
				Position:    j,
			})
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// sortChecklists orders by frequency (daily, weekly, monthly) and within
// daily by floor section order.
func sortChecklists(lists []*entity.Checklist) {
	freqOrder := map[string]int{entity.FreqDaily: 0, entity.FreqWeekly: 1, entity.FreqMonthly: 2}
	sort.SliceStable(lists, func(i, j int) bool {
		fi, fj := freqOrder[lists[i].Frequency], freqOrder[lists[j].Frequency]
		if fi != fj {
			return fi < fj
		}
		if lists[i].Frequency == entity.FreqDaily {
			oi, oj := entity.DailySectionOrder(lists[i].Title), entity.DailySectionOrder(lists[j].Title)
			if oi != oj {
				return oi < oj
			}
		}
		return lists[i].Title < lists[j].Title
	})
}

// computeProgress aggregates done/total subtask counts per frequency.
// A frequency with no subtasks reports 0 percent, not NaN.
func computeProgress(lists []*entity.Checklist, done map[string]bool) []dto.FrequencyProgress {
	byFreq := make(map[string]*dto.FrequencyProgress)
	for _, f := range entity.AllFrequencies() {
		byFreq[f] = &dto.FrequencyProgress{Frequency: f}
	}
	for _, cl := range lists {
		p, ok := byFreq[cl.Frequency]
		if !ok {
			continue
		}
		for _, t := range cl.Tasks {
			for _, s := range t.Subtasks {
				p.Total++
				if done[s.ID] {
					p.Done++
				}
			}
		}
	}
	out := make([]dto.FrequencyProgress, 0, len(byFreq))
	for _, f := range entity.AllFrequencies() {
		p := byFreq[f]
		if p.Total > 0 {
			p.Percent = float64(p.Done) / float64(p.Total) * 100
		}
		out = append(out, *p)
	}
	return out
}

func containsSubtask(cl *entity.Checklist, subtaskID string) bool {
	for _, t := range cl.Tasks {
		for _, s := range t.Subtasks {
			if s.ID == subtaskID {
				return true
			}
		}
	}
	return false
}

// dateOnly truncates ts to its calendar day.
func dateOnly(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
}

// toChecklistResponse maps a sheet; done marks completed subtask ids and may
// be nil for structural views.
func toChecklistResponse(cl *entity.Checklist, done map[string]bool) *dto.ChecklistResponse {
	resp := &dto.ChecklistResponse{
		ID:         cl.ID,
		LocationID: cl.LocationID,
		Title:      cl.Title,
		Frequency:  cl.Frequency,
		Tasks:      make([]dto.TaskResponse, 0, len(cl.Tasks)),
	}
	for _, t := range cl.Tasks {
		tr := dto.TaskResponse{ID: t.ID, Description: t.Description, Subtasks: make([]dto.SubtaskResponse, 0, len(t.Subtasks))}
		for _, s := range t.Subtasks {
			tr.Subtasks = append(tr.Subtasks, dto.SubtaskResponse{ID: s.ID, Description: s.Description, Completed: done[s.ID]})
		}
		resp.Tasks = append(resp.Tasks, tr)
	}
	return resp
}
