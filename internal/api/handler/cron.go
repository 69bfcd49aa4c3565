package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/inpulse/inpulse-api/internal/scheduler"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
	"github.com/inpulse/inpulse-api/pkg/log"
)

type SyncResponse struct {
	Message string `json:"message"`
	Synced  int    `json:"synced"`
}

// SyncFacebook sincroniza na hora as campanhas do usuário autenticado
func SyncFacebook(syncer scheduler.CampaignSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		synced, err := syncer.SyncTenant(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, scheduler.ErrIntegrationNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Facebook integration not found", nil)
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("sync: erro ao sincronizar campanhas")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao sincronizar campanhas do Facebook", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, SyncResponse{Message: "Facebook campaigns synced", Synced: synced})
	}
}

// RunCronJob dispara manualmente um job registrado
func RunCronJob(registry *scheduler.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		err := registry.Run(cronType)
		switch {
		case errors.Is(err, scheduler.ErrUnknownJob):
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"accepted": registry.Names(),
			})
			return
		case errors.Is(err, scheduler.ErrSyncInProgress):
			apiErrors.WriteError(w, apiErrors.ErrConflict, "Cron job já em andamento", nil)
			return
		case err != nil:
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("Cron job disparada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status dos jobs registrados
func GetCronStatus(registry *scheduler.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, registry.Status())
	}
}
