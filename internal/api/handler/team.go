package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/inpulse/inpulse-api/internal/usecases/teaming"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
	"github.com/inpulse/inpulse-api/pkg/log"
)

func ListTeamMembers(service teaming.TeamManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		members, err := service.ListMembers(r.Context(), claims.UserID)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("team: erro ao listar membros")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar membros do time", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, members)
	}
}

func DeleteTeamMember(service teaming.TeamManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		memberID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		err := service.RemoveMember(r.Context(), claims, memberID)
		switch {
		case err == nil:
			writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Team member removed successfully"})
		case errors.Is(err, teaming.ErrCannotDeleteSelf):
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "You cannot delete your own account", nil)
		case errors.Is(err, teaming.ErrInsufficientPrivilege):
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para remover membros", nil)
		case errors.Is(err, teaming.ErrMemberNotFound):
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Team member not found", nil)
		default:
			log.ForContext(r.Context()).WithError(err).Error("team: erro ao remover membro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover membro do time", nil)
		}
	}
}
