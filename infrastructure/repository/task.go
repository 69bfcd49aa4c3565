package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/internal/domain"
)

const tasksTable = "tasks"

var taskColumns = []string{"id", "user_id", "content", "status", "priority", "due_date", "assignee_id", "created_at", "updated_at"}

type TaskRepository interface {
	CountTasks(ctx context.Context, tenantID string, filter domain.TaskFilter) (int64, error)
	ListTasks(ctx context.Context, tenantID string, filter domain.TaskFilter) ([]*domain.Task, error)
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetTask(ctx context.Context, tenantID, taskID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, tenantID, taskID string, req *domain.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, tenantID, taskID string) (bool, error)
}

type taskRepository struct {
	conn postgres.Queryer
}

func NewTaskRepository(conn postgres.Queryer) TaskRepository {
	return &taskRepository{
		conn: conn,
	}
}

func taskFilterClause(tenantID string, filter domain.TaskFilter) squirrel.And {
	where := squirrel.And{squirrel.Eq{"user_id": tenantID}}

	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": *filter.Status})
	}

	if filter.NotStatus != nil {
		where = append(where, squirrel.NotEq{"status": *filter.NotStatus})
	}

	return where
}

func (r *taskRepository) CountTasks(ctx context.Context, tenantID string, filter domain.TaskFilter) (int64, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(tasksTable).
		Where(taskFilterClause(tenantID, filter)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar tarefas: %w", err)
	}

	return count, nil
}

func (r *taskRepository) ListTasks(ctx context.Context, tenantID string, filter domain.TaskFilter) ([]*domain.Task, error) {
	query, args, err := squirrel.
		Select(taskColumns...).
		From(tasksTable).
		Where(taskFilterClause(tenantID, filter)).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar tarefas: %w", err)
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao processar tarefa: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return tasks, nil
}

func (r *taskRepository) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	query, args, err := squirrel.
		Insert(tasksTable).
		Columns("id", "user_id", "content", "status", "priority", "due_date", "assignee_id").
		Values(task.ID, task.TenantID, task.Content, task.Status, task.Priority, task.DueDate, task.AssigneeID).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, fmt.Errorf("erro ao criar tarefa: %w", err)
	}

	return task, nil
}

func (r *taskRepository) GetTask(ctx context.Context, tenantID, taskID string) (*domain.Task, error) {
	query, args, err := squirrel.
		Select(taskColumns...).
		From(tasksTable).
		Where(squirrel.Eq{"id": taskID, "user_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	task, err := scanTask(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar tarefa: %w", err)
	}

	return task, nil
}

// UpdateTask aplica apenas os campos informados. Retorna nil quando a tarefa não existe.
func (r *taskRepository) UpdateTask(ctx context.Context, tenantID, taskID string, req *domain.UpdateTaskRequest) (*domain.Task, error) {
	queryBuilder := squirrel.
		Update(tasksTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": taskID, "user_id": tenantID})

	if req.Content != nil {
		queryBuilder = queryBuilder.Set("content", *req.Content)
	}

	if req.Status != nil {
		queryBuilder = queryBuilder.Set("status", *req.Status)
	}

	if req.Priority != nil {
		queryBuilder = queryBuilder.Set("priority", *req.Priority)
	}

	if req.DueDate != nil {
		queryBuilder = queryBuilder.Set("due_date", *req.DueDate)
	}

	if req.AssigneeID != nil {
		if *req.AssigneeID == "" {
			queryBuilder = queryBuilder.Set("assignee_id", nil)
		} else {
			queryBuilder = queryBuilder.Set("assignee_id", *req.AssigneeID)
		}
	}

	query, args, err := queryBuilder.
		Suffix("RETURNING id, user_id, content, status, priority, due_date, assignee_id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	task, err := scanTask(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao atualizar tarefa: %w", err)
	}

	return task, nil
}

func (r *taskRepository) DeleteTask(ctx context.Context, tenantID, taskID string) (bool, error) {
	query, args, err := squirrel.
		Delete(tasksTable).
		Where(squirrel.Eq{"id": taskID, "user_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover tarefa: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		task       domain.Task
		dueDate    sql.NullTime
		assigneeID sql.NullString
	)

	if err := row.Scan(
		&task.ID,
		&task.TenantID,
		&task.Content,
		&task.Status,
		&task.Priority,
		&dueDate,
		&assigneeID,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}

	if assigneeID.Valid {
		task.AssigneeID = &assigneeID.String
	}

	return &task, nil
}
