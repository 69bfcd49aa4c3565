package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/internal/usecases/tasking"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
	"github.com/inpulse/inpulse-api/pkg/log"
)

func ListTasks(service tasking.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		tasks, err := service.ListTasks(r.Context(), actorFrom(claims))
		if err != nil {
			handleTaskError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, tasks)
	}
}

func CreateTask(service tasking.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.CreateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		task, err := service.CreateTask(r.Context(), actorFrom(claims), &req)
		if err != nil {
			handleTaskError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, task)
	}
}

func GetTask(service tasking.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		taskID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		task, err := service.GetTask(r.Context(), actorFrom(claims), taskID)
		if err != nil {
			handleTaskError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, task)
	}
}

func UpdateTask(service tasking.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.UpdateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		taskID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		task, err := service.UpdateTask(r.Context(), actorFrom(claims), taskID, &req)
		if err != nil {
			handleTaskError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, task)
	}
}

func DeleteTask(service tasking.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		taskID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTask(r.Context(), actorFrom(claims), taskID); err != nil {
			handleTaskError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func ListNotifications(service tasking.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		notifications, err := service.ListNotifications(r.Context(), actorFrom(claims))
		if err != nil {
			handleTaskError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, notifications)
	}
}

func MarkNotificationRead(service tasking.TaskManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		notificationID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.MarkNotificationRead(r.Context(), actorFrom(claims), notificationID); err != nil {
			handleTaskError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Notification marked as read"})
	}
}

func handleTaskError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, tasking.ErrTaskNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Task not found", nil)
	case errors.Is(err, tasking.ErrNotificationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Notification not found", nil)
	case errors.Is(err, tasking.ErrContentRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Content is required", nil)
	case errors.Is(err, tasking.ErrInvalidTask):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("tasks: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar tarefa", nil)
	}
}
