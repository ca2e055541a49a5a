// Package export builds downloadable record sheets. The use case assembles a
// format-neutral table; rendering to PDF or Excel is delegated to
// infrastructure through the TableRenderer port.
package export

import (
	"context"
	"fmt"
	"time"

	"github.com/safebite/safebite-api/internal/application/dto"
	"github.com/safebite/safebite-api/internal/domain"
	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/rbac"
	"github.com/safebite/safebite-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// TableRenderer turns an assembled table into document bytes.
type TableRenderer interface {
	Render(ctx context.Context, table dto.ExportTable) ([]byte, error)
}

// UseCase produces the date-range downloads of a location's records.
type UseCase struct {
	tempRepo      repository.TemperatureRepository
	checklistRepo repository.ChecklistRepository
	locationRepo  repository.LocationRepository
	userRepo      repository.UserRepository
	pdf           TableRenderer
	excel         TableRenderer
}

// NewUseCase builds the use case with both renderers.
func NewUseCase(
	tempRepo repository.TemperatureRepository,
	checklistRepo repository.ChecklistRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	pdf TableRenderer,
	excel TableRenderer,
) *UseCase {
	return &UseCase{
		tempRepo:      tempRepo,
		checklistRepo: checklistRepo,
		locationRepo:  locationRepo,
		userRepo:      userRepo,
		pdf:           pdf,
		excel:         excel,
	}
}

// Generate renders the requested records as a downloadable file. The caller
// must hold the download capability and see the location. The date range is
// inclusive of both endpoints.
func (uc *UseCase) Generate(ctx context.Context, scope rbac.Scope, in dto.ExportRequest) (*dto.ExportFile, error) {
	if !rbac.Allows(scope.Role, rbac.CapDownloadRecords) {
		return nil, domain.ErrForbidden
	}

	start, err := time.Parse(dateLayout, in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	endDay, err := time.Parse(dateLayout, in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if endDay.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	end := endDay.AddDate(0, 0, 1)

	loc, err := uc.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if !scope.CanAccessLocation(loc.CompanyID, loc.ID) {
		return nil, domain.ErrLocationDenied
	}

	var table dto.ExportTable
	switch in.Type {
	case dto.ExportTemperatures:
		table, err = uc.temperatureTable(ctx, loc, start, end)
	case dto.ExportChecklists:
		table, err = uc.checklistTable(ctx, loc, start, end)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}
	table.Subtitle = fmt.Sprintf("%s, %s to %s", loc.Name, in.StartDate, in.EndDate)

	base := fmt.Sprintf("%s-%s-%s", in.Type, in.StartDate, in.EndDate)
	switch in.Format {
	case dto.FormatPDF:
		data, err := uc.pdf.Render(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("export: render pdf: %w", err)
		}
		return &dto.ExportFile{Filename: base + ".pdf", ContentType: "application/pdf", Data: data}, nil
	case dto.FormatExcel:
		data, err := uc.excel.Render(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("export: render xlsx: %w", err)
		}
		return &dto.ExportFile{
			Filename:    base + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	}
	return nil, domain.ErrInvalidInput
}

// temperatureTable flattens readings into rows, newest first as the
// repository returns them.
func (uc *UseCase) temperatureTable(ctx context.Context, loc *entity.Location, start, end time.Time) (dto.ExportTable, error) {
	recs, err := uc.tempRepo.ListByLocationBetween(ctx, loc.ID, start, end)
	if err != nil {
		return dto.ExportTable{}, err
	}
	names, err := uc.userNames(ctx, userIDsFromTemps(recs))
	if err != nil {
		return dto.ExportTable{}, err
	}

	table := dto.ExportTable{
		Title:   "Temperature records",
		Headers: []string{"Recorded", "Type", "Value (°C)", "Status", "Corrective action", "Recorded by"},
	}
	for _, r := range recs {
		status := "OK"
		if r.OutOfRange {
			status = "OUT OF RANGE"
		}
		table.Rows = append(table.Rows, []string{
			r.RecordedAt.Format("2006-01-02 15:04"),
			r.Type,
			r.Value.StringFixed(1),
			status,
			r.CorrectiveAction,
			names[r.RecordedBy],
		})
	}
	return table, nil
}

// checklistTable flattens completed ticks into rows, matched back to their
// subtask descriptions.
func (uc *UseCase) checklistTable(ctx context.Context, loc *entity.Location, start, end time.Time) (dto.ExportTable, error) {
	comps, err := uc.checklistRepo.ListCompletionsBetween(ctx, loc.ID, start, end)
	if err != nil {
		return dto.ExportTable{}, err
	}
	lists, err := uc.checklistRepo.ListByLocation(ctx, loc.ID)
	if err != nil {
		return dto.ExportTable{}, err
	}

	type subtaskInfo struct {
		checklist string
		task      string
		subtask   string
	}
	info := map[string]subtaskInfo{}
	for _, cl := range lists {
		for _, t := range cl.Tasks {
			for _, s := range t.Subtasks {
				info[s.ID] = subtaskInfo{checklist: cl.Title, task: t.Description, subtask: s.Description}
			}
		}
	}

	names, err := uc.userNames(ctx, userIDsFromComps(comps))
	if err != nil {
		return dto.ExportTable{}, err
	}

	table := dto.ExportTable{
		Title:   "Checklist completions",
		Headers: []string{"Date", "Checklist", "Task", "Subtask", "Completed at", "Completed by"},
	}
	for _, c := range comps {
		if !c.Completed {
			continue
		}
		si := info[c.SubtaskID]
		completedAt := ""
		if c.CompletedAt != nil {
			completedAt = c.CompletedAt.Format("2006-01-02 15:04")
		}
		table.Rows = append(table.Rows, []string{
			c.Date.Format(dateLayout),
			si.checklist,
			si.task,
			si.subtask,
			completedAt,
			names[c.UserID],
		})
	}
	return table, nil
}

// userNames resolves ids to full names; unknown ids map to the raw id so a
// deleted account still leaves a trace in the sheet.
func (uc *UseCase) userNames(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	for _, id := range ids {
		if _, done := out[id]; done {
			continue
		}
		u, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if u != nil {
			out[id] = u.FullName
		} else {
			out[id] = id
		}
	}
	return out, nil
}

func userIDsFromTemps(recs []*entity.TemperatureRecord) []string {
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.RecordedBy)
	}
	return ids
}

func userIDsFromComps(comps []*entity.SubtaskCompletion) []string {
	ids := make([]string, 0, len(comps))
	for _, c := range comps {
		ids = append(ids, c.UserID)
	}
	return ids
}
