package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/internal/usecases/integrating"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
	"github.com/inpulse/inpulse-api/pkg/log"
)

func ListIntegrations(service integrating.IntegrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		integrations, err := service.ListIntegrations(r.Context(), claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("integrations: erro ao listar")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar integrações", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, integrations)
	}
}

func ConnectIntegration(service integrating.IntegrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.ConnectIntegrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		integration, err := service.ConnectIntegration(r.Context(), claims.UserID, &req)
		switch {
		case err == nil:
			writeJSON(w, r, http.StatusCreated, integration)
		case errors.Is(err, integrating.ErrMissingAccount):
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "externalAccountId é obrigatório", nil)
		case errors.Is(err, integrating.ErrUnsupportedPlatform):
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma não suportada", nil)
		default:
			log.ForContext(r.Context()).WithError(err).Error("integrations: erro ao vincular")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao vincular integração", nil)
		}
	}
}

func DisconnectIntegration(service integrating.IntegrationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		integrationID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		err := service.DisconnectIntegration(r.Context(), claims.UserID, integrationID)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, integrating.ErrIntegrationNotFound):
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Integration not found", nil)
		default:
			log.ForContext(r.Context()).WithError(err).Error("integrations: erro ao remover")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover integração", nil)
		}
	}
}
