package domain

import (
	"fmt"
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "INPROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID         string       `json:"id"`
	TenantID   string       `json:"userId"`
	Content    string       `json:"content"`
	Status     TaskStatus   `json:"status"`
	Priority   TaskPriority `json:"priority"`
	DueDate    *time.Time   `json:"dueDate"`
	AssigneeID *string      `json:"assigneeId"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

// IsOverdue indica tarefa não concluída com prazo anterior a now
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status != TaskStatusDone && t.DueDate != nil && t.DueDate.Before(now)
}

// IsHighPriorityOpen indica tarefa de alta prioridade ainda não concluída
func (t *Task) IsHighPriorityOpen() bool {
	return t.Status != TaskStatusDone && t.Priority == TaskPriorityHigh
}

// TaskFilter restringe consultas de tarefas. Campos nil não filtram.
type TaskFilter struct {
	Status    *TaskStatus
	NotStatus *TaskStatus
}

type CreateTaskRequest struct {
	Content    string       `json:"content"`
	Priority   TaskPriority `json:"priority"`
	Status     TaskStatus   `json:"status"`
	DueDate    *time.Time   `json:"dueDate"`
	AssigneeID *string      `json:"assigneeId"`
}

type UpdateTaskRequest struct {
	Content    *string       `json:"content"`
	Status     *TaskStatus   `json:"status"`
	Priority   *TaskPriority `json:"priority"`
	DueDate    *time.Time    `json:"dueDate"`
	AssigneeID *string       `json:"assigneeId"`
}

// Validate verifica os enums informados
func (r *UpdateTaskRequest) Validate() error {
	if r.Status != nil && !r.Status.Valid() {
		return fmt.Errorf("status inválido: %s", *r.Status)
	}
	if r.Priority != nil && !r.Priority.Valid() {
		return fmt.Errorf("prioridade inválida: %s", *r.Priority)
	}
	if r.Content != nil && *r.Content == "" {
		return fmt.Errorf("o conteúdo da tarefa não pode ser vazio")
	}
	return nil
}
