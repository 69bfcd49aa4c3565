package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/inpulse/inpulse-api/internal/usecases/dashboarding"
	"github.com/inpulse/inpulse-api/pkg/apiErrors"
	"github.com/inpulse/inpulse-api/pkg/log"
)

// referenceTime lê o parâmetro opcional "now" (RFC3339). Ausente usa o relógio do serviço.
func referenceTime(r *http.Request) (*time.Time, error) {
	raw := r.URL.Query().Get("now")
	if raw == "" {
		return nil, nil
	}

	now, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &now, nil
}

func GetDashboardStats(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		now, err := referenceTime(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro now deve estar no formato RFC3339", nil)
			return
		}

		metrics, err := service.ComputeDashboardMetrics(r.Context(), claims.UserID, now)
		if err != nil {
			handleDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, metrics)
	}
}

func GetRevenueChart(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		now, err := referenceTime(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro now deve estar no formato RFC3339", nil)
			return
		}

		points, err := service.RevenueChart(r.Context(), claims.UserID, now)
		if err != nil {
			handleDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, points)
	}
}

func handleDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, dashboarding.ErrInvalidTenant):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tenant inválido", nil)
	case errors.Is(err, dashboarding.ErrStoreUnavailable):
		log.ForContext(r.Context()).WithError(err).Error("dashboard: armazenamento indisponível")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular métricas do dashboard", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("dashboard: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular métricas do dashboard", nil)
	}
}
