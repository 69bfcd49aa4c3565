package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/internal/usecases/messaging"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
	"github.com/inpulse/inpulse-api/pkg/log"
)

type StartConversationResponse struct {
	ConversationID string `json:"conversationId"`
}

func ListConversations(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		conversations, err := service.ListConversations(r.Context(), claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("messaging: erro ao listar conversas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch conversations.", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, conversations)
	}
}

func GetConversation(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		conversationID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		conversation, err := service.GetConversation(r.Context(), claims.UserID, conversationID)
		switch {
		case err == nil:
			writeJSON(w, r, http.StatusOK, conversation)
		case errors.Is(err, messaging.ErrConversationNotFound):
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conversation not found or access denied.", nil)
		default:
			log.ForContext(r.Context()).WithError(err).Error("messaging: erro ao buscar conversa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to fetch conversation details.", nil)
		}
	}
}

func StartConversation(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.StartConversationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		conversationID, created, err := service.StartConversation(r.Context(), claims.UserID, req.ParticipantID)
		switch {
		case err == nil:
			status := http.StatusOK
			if created {
				status = http.StatusCreated
			}
			writeJSON(w, r, status, StartConversationResponse{ConversationID: conversationID})
		case errors.Is(err, messaging.ErrParticipantRequired):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Participant ID is required.", nil)
		case errors.Is(err, messaging.ErrSelfConversation):
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "You cannot start a conversation with yourself.", nil)
		case errors.Is(err, messaging.ErrParticipantNotFound):
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Participant not found.", nil)
		default:
			log.ForContext(r.Context()).WithError(err).Error("messaging: erro ao iniciar conversa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to start conversation.", nil)
		}
	}
}

func SendMessage(service messaging.Messenger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		message, err := service.SendMessage(r.Context(), claims.UserID, &req)
		switch {
		case err == nil:
			writeJSON(w, r, http.StatusCreated, message)
		case errors.Is(err, messaging.ErrMissingMessageData):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Conversation ID and content are required.", nil)
		case errors.Is(err, messaging.ErrConversationNotFound):
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Conversation not found or access denied.", nil)
		default:
			log.ForContext(r.Context()).WithError(err).Error("messaging: erro ao enviar mensagem")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to send message.", nil)
		}
	}
}
