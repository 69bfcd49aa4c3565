package tasking

import (
	"context"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/inpulse/inpulse-api/infrastructure/repository"
	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/pkg/log"
	"github.com/inpulse/inpulse-api/pkg/utils"
)

const productivityLink = "#Productivity"

// Actor identifica quem executa a operação
type Actor struct {
	UserID    string
	FirstName string
}

type TaskManager interface {
	ListTasks(ctx context.Context, actor Actor) ([]*domain.Task, error)
	CreateTask(ctx context.Context, actor Actor, req *domain.CreateTaskRequest) (*domain.Task, error)
	GetTask(ctx context.Context, actor Actor, taskID string) (*domain.Task, error)
	UpdateTask(ctx context.Context, actor Actor, taskID string, req *domain.UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, actor Actor, taskID string) error
	ListNotifications(ctx context.Context, actor Actor) ([]*domain.Notification, error)
	MarkNotificationRead(ctx context.Context, actor Actor, notificationID string) error
}

type Service struct {
	taskRepo         repository.TaskRepository
	notificationRepo repository.NotificationRepository
	generateID       func() (string, error)
}

func NewService(taskRepo repository.TaskRepository, notificationRepo repository.NotificationRepository) TaskManager {
	return &Service{
		taskRepo:         taskRepo,
		notificationRepo: notificationRepo,
		generateID:       utils.GenerateID,
	}
}

func (s *Service) ListTasks(ctx context.Context, actor Actor) ([]*domain.Task, error) {
	tasks, err := s.taskRepo.ListTasks(ctx, actor.UserID, domain.TaskFilter{})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar tarefas")
	}

	return tasks, nil
}

func (s *Service) CreateTask(ctx context.Context, actor Actor, req *domain.CreateTaskRequest) (*domain.Task, error) {
	if req == nil || strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}

	status := req.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.TaskPriorityMedium
	}

	if !status.Valid() || !priority.Valid() {
		return nil, fmt.Errorf("%w: status %q prioridade %q", ErrInvalidTask, status, priority)
	}

	id, err := s.generateID()
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao gerar id da tarefa")
	}

	assigneeID := req.AssigneeID
	if assigneeID != nil && *assigneeID == "" {
		assigneeID = nil
	}

	task, err := s.taskRepo.CreateTask(ctx, &domain.Task{
		ID:         id,
		TenantID:   actor.UserID,
		Content:    req.Content,
		Status:     status,
		Priority:   priority,
		DueDate:    req.DueDate,
		AssigneeID: assigneeID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao criar tarefa")
	}

	s.notifyAssignee(ctx, actor, task)

	return task, nil
}

func (s *Service) GetTask(ctx context.Context, actor Actor, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.GetTask(ctx, actor.UserID, taskID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar tarefa")
	}

	if task == nil {
		return nil, ErrTaskNotFound
	}

	return task, nil
}

func (s *Service) UpdateTask(ctx context.Context, actor Actor, taskID string, req *domain.UpdateTaskRequest) (*domain.Task, error) {
	if req == nil {
		return nil, ErrInvalidTask
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}

	current, err := s.GetTask(ctx, actor, taskID)
	if err != nil {
		return nil, err
	}

	updated, err := s.taskRepo.UpdateTask(ctx, actor.UserID, taskID, req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao atualizar tarefa")
	}

	if updated == nil {
		return nil, ErrTaskNotFound
	}

	if assigneeChanged(current.AssigneeID, updated.AssigneeID) {
		s.notifyAssignee(ctx, actor, updated)
	}

	return updated, nil
}

func (s *Service) DeleteTask(ctx context.Context, actor Actor, taskID string) error {
	deleted, err := s.taskRepo.DeleteTask(ctx, actor.UserID, taskID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao remover tarefa")
	}

	if !deleted {
		return ErrTaskNotFound
	}

	return nil
}

func (s *Service) ListNotifications(ctx context.Context, actor Actor) ([]*domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotifications(ctx, actor.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar notificações")
	}

	return notifications, nil
}

func (s *Service) MarkNotificationRead(ctx context.Context, actor Actor, notificationID string) error {
	updated, err := s.notificationRepo.MarkAsRead(ctx, actor.UserID, notificationID)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao marcar notificação como lida")
	}

	if !updated {
		return ErrNotificationNotFound
	}

	return nil
}

// notifyAssignee avisa o responsável quando a tarefa é atribuída a outra pessoa.
// Falhas são apenas registradas em log.
func (s *Service) notifyAssignee(ctx context.Context, actor Actor, task *domain.Task) {
	if task.AssigneeID == nil || *task.AssigneeID == "" || *task.AssigneeID == actor.UserID {
		return
	}

	logger := log.ForContext(ctx)

	id, err := s.generateID()
	if err != nil {
		logger.WithError(err).Warn("tasks: falha ao gerar id da notificação")
		return
	}

	notification := &domain.Notification{
		ID:      id,
		UserID:  *task.AssigneeID,
		Message: fmt.Sprintf("%s assigned you a new task: \"%s\"", actor.FirstName, task.Content),
		Link:    productivityLink,
	}

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		logger.WithError(err).Warnf("tasks: tarefa %s criada, mas a notificação falhou", task.ID)
	}
}

func assigneeChanged(before, after *string) bool {
	if after == nil {
		return false
	}
	return before == nil || *before != *after
}
