package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safebite/safebite-api/internal/domain/entity"
	"github.com/safebite/safebite-api/internal/domain/repository"
)

var _ repository.ChecklistRepository = (*ChecklistRepo)(nil)

// ChecklistRepo implements the ChecklistRepository port on PostgreSQL.
// Sheet writes replace the whole task tree inside one transaction; reads
// reassemble the tree ordered by position.
type ChecklistRepo struct {
	pool *pgxpool.Pool
}

func NewChecklistRepository(pool *pgxpool.Pool) *ChecklistRepo {
	return &ChecklistRepo{pool: pool}
}

func (r *ChecklistRepo) Create(ctx context.Context, cl *entity.Checklist) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO checklists (id, location_id, title, frequency, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := tx.Exec(ctx, query, cl.ID, cl.LocationID, cl.Title, cl.Frequency, cl.CreatedAt, cl.UpdatedAt); err != nil {
		return fmt.Errorf("insert checklist: %w", err)
	}
	if err := insertTree(ctx, tx, cl); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ChecklistRepo) GetByID(ctx context.Context, id string) (*entity.Checklist, error) {
	query := `SELECT id, location_id, title, frequency, created_at, updated_at FROM checklists WHERE id = $1`
	var cl entity.Checklist
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&cl.ID, &cl.LocationID, &cl.Title, &cl.Frequency, &cl.CreatedAt, &cl.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checklist: %w", err)
	}
	if err := r.loadTrees(ctx, map[string]*entity.Checklist{cl.ID: &cl}); err != nil {
		return nil, err
	}
	return &cl, nil
}

// Update rewrites the sheet header and replaces the whole task tree.
// Completions referencing dropped subtasks cascade away with them.
func (r *ChecklistRepo) Update(ctx context.Context, cl *entity.Checklist) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE checklists SET title = $2, frequency = $3, updated_at = $4 WHERE id = $1`
	if _, err := tx.Exec(ctx, query, cl.ID, cl.Title, cl.Frequency, cl.UpdatedAt); err != nil {
		return fmt.Errorf("update checklist: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM checklist_tasks WHERE checklist_id = $1`, cl.ID); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	if err := insertTree(ctx, tx, cl); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ChecklistRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM checklists WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete checklist: %w", err)
	}
	return nil
}

func (r *ChecklistRepo) ListByLocation(ctx context.Context, locationID string) ([]*entity.Checklist, error) {
	query := `SELECT id, location_id, title, frequency, created_at, updated_at
		FROM checklists WHERE location_id = $1 ORDER BY title`
	rows, err := r.pool.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	defer rows.Close()

	byID := map[string]*entity.Checklist{}
	var list []*entity.Checklist
	for rows.Next() {
		var cl entity.Checklist
		if err := rows.Scan(&cl.ID, &cl.LocationID, &cl.Title, &cl.Frequency, &cl.CreatedAt, &cl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan checklist: %w", err)
		}
		byID[cl.ID] = &cl
		list = append(list, &cl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadTrees(ctx, byID); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ChecklistRepo) UpsertCompletion(ctx context.Context, c *entity.SubtaskCompletion) error {
	query := `
		INSERT INTO subtask_completions (id, subtask_id, user_id, location_id, date, completed, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (subtask_id, user_id, date)
		DO UPDATE SET completed = EXCLUDED.completed, completed_at = EXCLUDED.completed_at`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.SubtaskID, c.UserID, c.LocationID, c.Date, c.Completed, c.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert completion: %w", err)
	}
	return nil
}

func (r *ChecklistRepo) ListCompletionsByUserDate(ctx context.Context, userID string, date time.Time) ([]string, error) {
	query := `SELECT subtask_id FROM subtask_completions WHERE user_id = $1 AND date = $2 AND completed`
	rows, err := r.pool.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("list user completions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *ChecklistRepo) ListCompletionsBetween(ctx context.Context, locationID string, start, end time.Time) ([]*entity.SubtaskCompletion, error) {
	query := `
		SELECT id, subtask_id, user_id, location_id, date, completed, completed_at
		FROM subtask_completions
		WHERE location_id = $1 AND date >= $2 AND date < $3
		ORDER BY date`
	rows, err := r.pool.Query(ctx, query, locationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	defer rows.Close()

	var list []*entity.SubtaskCompletion
	for rows.Next() {
		var c entity.SubtaskCompletion
		if err := rows.Scan(&c.ID, &c.SubtaskID, &c.UserID, &c.LocationID, &c.Date, &c.Completed, &c.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan completion: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// insertTree writes a checklist's tasks and subtasks.
func insertTree(ctx context.Context, tx pgx.Tx, cl *entity.Checklist) error {
	for _, t := range cl.Tasks {
		query := `INSERT INTO checklist_tasks (id, checklist_id, description, position) VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, query, t.ID, cl.ID, t.Description, t.Position); err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		for _, s := range t.Subtasks {
			query := `INSERT INTO checklist_subtasks (id, task_id, description, position) VALUES ($1, $2, $3, $4)`
			if _, err := tx.Exec(ctx, query, s.ID, t.ID, s.Description, s.Position); err != nil {
				return fmt.Errorf("insert subtask: %w", err)
			}
		}
	}
	return nil
}

// loadTrees fills Tasks for every checklist in byID with two queries.
func (r *ChecklistRepo) loadTrees(ctx context.Context, byID map[string]*entity.Checklist) error {
	if len(byID) == 0 {
		return nil
	}
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	taskQuery := `
		SELECT id, checklist_id, description, position FROM checklist_tasks
		WHERE checklist_id = ANY($1) ORDER BY checklist_id, position`
	rows, err := r.pool.Query(ctx, taskQuery, ids)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	taskIndex := map[string]*entity.ChecklistTask{}
	tasksByList := map[string][]*entity.ChecklistTask{}
	var taskIDs []string
	for rows.Next() {
		t := &entity.ChecklistTask{}
		if err := rows.Scan(&t.ID, &t.ChecklistID, &t.Description, &t.Position); err != nil {
			rows.Close()
			return fmt.Errorf("scan task: %w", err)
		}
		taskIndex[t.ID] = t
		tasksByList[t.ChecklistID] = append(tasksByList[t.ChecklistID], t)
		taskIDs = append(taskIDs, t.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	if len(taskIDs) > 0 {
		subQuery := `
			SELECT id, task_id, description, position FROM checklist_subtasks
			WHERE task_id = ANY($1) ORDER BY task_id, position`
		rows, err = r.pool.Query(ctx, subQuery, taskIDs)
		if err != nil {
			return fmt.Errorf("load subtasks: %w", err)
		}
		for rows.Next() {
			var s entity.ChecklistSubtask
			if err := rows.Scan(&s.ID, &s.TaskID, &s.Description, &s.Position); err != nil {
				rows.Close()
				return fmt.Errorf("scan subtask: %w", err)
			}
			task := taskIndex[s.TaskID]
			task.Subtasks = append(task.Subtasks, s)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
	}

	for id, cl := range byID {
		tasks := tasksByList[id]
		cl.Tasks = make([]entity.ChecklistTask, 0, len(tasks))
		for _, t := range tasks {
			cl.Tasks = append(cl.Tasks, *t)
		}
	}
	return nil
}
