package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/application/usecase"
	"github.com/safebite/safebite-api/internal/domain"
)

func newChecklistUC(repo *memChecklistRepo) *usecase.ChecklistUseCase {
	return usecase.NewChecklistUseCase(repo, twoLocations())
}

func createSheet(t *testing.T, uc *usecase.ChecklistUseCase, title, frequency string, subtasksPerTask ...int) *dto.ChecklistResponse {
	t.Helper()
	tasks := make([]dto.TaskInput, 0, len(subtasksPerTask))
	for _, n := range subtasksPerTask {
		task := dto.TaskInput{Description: title + " task"}
		for j := 0; j < n; j++ {
			task.Subtasks = append(task.Subtasks, dto.SubtaskInput{Description: "step"})
		}
		tasks = append(tasks, task)
	}
	resp, err := uc.Create(context.Background(), adminScope(companyA), dto.CreateChecklistRequest{
		LocationID: locationA,
		Title:      title,
		Frequency:  frequency,
		Tasks:      tasks,
	})
	require.NoError(t, err)
	return resp
}

func TestChecklistCreate_OpsDenied(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())

	_, err := uc.Create(context.Background(), opsScope(companyA), dto.CreateChecklistRequest{
		LocationID: locationA, Title: "Opening", Frequency: "daily",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestChecklistCreate_BadFrequency(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())

	_, err := uc.Create(context.Background(), adminScope(companyA), dto.CreateChecklistRequest{
		LocationID: locationA, Title: "Opening", Frequency: "hourly",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChecklistCreate_BuildsTree(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())

	sheet := createSheet(t, uc, "Opening", "daily", 2, 3)
	require.Len(t, sheet.Tasks, 2)
	assert.Len(t, sheet.Tasks[0].Subtasks, 2)
	assert.Len(t, sheet.Tasks[1].Subtasks, 3)
}

func TestChecklistUpdate_ReplacesTree(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())
	sheet := createSheet(t, uc, "Opening", "daily", 2)

	tasks := []dto.TaskInput{{Description: "new task", Subtasks: []dto.SubtaskInput{{Description: "only step"}}}}
	updated, err := uc.Update(context.Background(), adminScope(companyA), sheet.ID, dto.UpdateChecklistRequest{Tasks: &tasks})
	require.NoError(t, err)
	require.Len(t, updated.Tasks, 1)
	assert.Len(t, updated.Tasks[0].Subtasks, 1)
	assert.NotEqual(t, sheet.Tasks[0].ID, updated.Tasks[0].ID)
}

func TestChecklistDelete_RequiresDeleteRight(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())
	sheet := createSheet(t, uc, "Closing", "daily", 1)

	err := uc.Delete(context.Background(), opsScope(companyA), sheet.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.Delete(context.Background(), adminScope(companyA), sheet.ID)
	assert.NoError(t, err)
}

func TestChecklistToggle_ManagerCompletesAssignedLocation(t *testing.T) {
	repo := newMemChecklistRepo()
	uc := newChecklistUC(repo)
	sheet := createSheet(t, uc, "Opening", "daily", 1)
	subtaskID := sheet.Tasks[0].Subtasks[0].ID
	today := time.Now().Format("2006-01-02")

	err := uc.ToggleSubtask(context.Background(), managerScope(companyA, locationA), "mgr1", sheet.ID, subtaskID, dto.ToggleSubtaskRequest{Date: today, Completed: true})
	require.NoError(t, err)

	board, err := uc.Board(context.Background(), managerScope(companyA, locationA), "mgr1", locationA)
	require.NoError(t, err)
	require.Len(t, board.Checklists, 1)
	assert.True(t, board.Checklists[0].Tasks[0].Subtasks[0].Completed)
}

func TestChecklistToggle_UnassignedManagerDenied(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())
	sheet := createSheet(t, uc, "Opening", "daily", 1)
	subtaskID := sheet.Tasks[0].Subtasks[0].ID

	err := uc.ToggleSubtask(context.Background(), managerScope(companyA, locationB), "mgr1", sheet.ID, subtaskID, dto.ToggleSubtaskRequest{Date: "2026-08-30", Completed: true})
	assert.ErrorIs(t, err, domain.ErrLocationDenied)
}

func TestChecklistToggle_SubtaskMustBelongToSheet(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())
	sheet := createSheet(t, uc, "Opening", "daily", 1)

	err := uc.ToggleSubtask(context.Background(), adminScope(companyA), "u1", sheet.ID, "not-a-subtask", dto.ToggleSubtaskRequest{Date: "2026-08-30", Completed: true})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChecklistBoard_ProgressPerFrequency(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())
	daily := createSheet(t, uc, "Opening", "daily", 2)
	createSheet(t, uc, "Deep clean", "weekly", 4)

	today := time.Now().Format("2006-01-02")
	err := uc.ToggleSubtask(context.Background(), adminScope(companyA), "u1", daily.ID, daily.Tasks[0].Subtasks[0].ID, dto.ToggleSubtaskRequest{Date: today, Completed: true})
	require.NoError(t, err)

	board, err := uc.Board(context.Background(), adminScope(companyA), "u1", locationA)
	require.NoError(t, err)

	byFreq := map[string]dto.FrequencyProgress{}
	for _, p := range board.Progress {
		byFreq[p.Frequency] = p
	}
	assert.Equal(t, 1, byFreq["daily"].Done)
	assert.Equal(t, 2, byFreq["daily"].Total)
	assert.InDelta(t, 50, byFreq["daily"].Percent, 0.01)
	assert.Equal(t, 0, byFreq["weekly"].Done)
	assert.Equal(t, 4, byFreq["weekly"].Total)
	assert.Equal(t, 0, byFreq["monthly"].Total)
	assert.Zero(t, byFreq["monthly"].Percent)
}

func TestChecklistBoard_DailySectionOrder(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())
	createSheet(t, uc, "Closing", "daily", 1)
	createSheet(t, uc, "PM", "daily", 1)
	createSheet(t, uc, "Opening", "daily", 1)

	board, err := uc.Board(context.Background(), adminScope(companyA), "u1", locationA)
	require.NoError(t, err)
	require.Len(t, board.Checklists, 3)
	assert.Equal(t, "Opening", board.Checklists[0].Title)
	assert.Equal(t, "PM", board.Checklists[1].Title)
	assert.Equal(t, "Closing", board.Checklists[2].Title)
}

func TestChecklistCalendar_DayStatuses(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())
	sheet := createSheet(t, uc, "Opening", "daily", 2)

	err := uc.ToggleSubtask(context.Background(), adminScope(companyA), "u1", sheet.ID, sheet.Tasks[0].Subtasks[0].ID, dto.ToggleSubtaskRequest{Date: "2026-08-10", Completed: true})
	require.NoError(t, err)
	err = uc.ToggleSubtask(context.Background(), adminScope(companyA), "u1", sheet.ID, sheet.Tasks[0].Subtasks[0].ID, dto.ToggleSubtaskRequest{Date: "2026-08-11", Completed: true})
	require.NoError(t, err)
	err = uc.ToggleSubtask(context.Background(), adminScope(companyA), "u2", sheet.ID, sheet.Tasks[0].Subtasks[1].ID, dto.ToggleSubtaskRequest{Date: "2026-08-11", Completed: true})
	require.NoError(t, err)

	cal, err := uc.Calendar(context.Background(), adminScope(companyA), locationA, 2026, time.August)
	require.NoError(t, err)
	require.Len(t, cal.Days, 31)

	byDate := map[string]dto.CalendarDayStatus{}
	for _, d := range cal.Days {
		byDate[d.Date] = d
	}
	assert.Equal(t, "partial", byDate["2026-08-10"].Status)
	assert.Equal(t, "complete", byDate["2026-08-11"].Status)
	assert.Equal(t, "none", byDate["2026-08-12"].Status)
}

func TestChecklistCalendar_NoTasks(t *testing.T) {
	uc := newChecklistUC(newMemChecklistRepo())

	cal, err := uc.Calendar(context.Background(), adminScope(companyA), locationA, 2026, time.February)
	require.NoError(t, err)
	for _, d := range cal.Days {
		assert.Equal(t, "no_tasks", d.Status)
	}
}
