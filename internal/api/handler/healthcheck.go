package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/inpulse/inpulse-api/pkg/log"
)

const pingTimeout = 2 * time.Second

// Pinger é satisfeito pela conexão com o postgres
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthcheckResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database,omitempty"`
	Time     time.Time `json:"time"`
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := HealthcheckResponse{Status: "ok", Time: time.Now().UTC()}
		if db == nil {
			writeJSON(w, r, http.StatusOK, resp)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: banco indisponível")
			resp.Status = "degraded"
			resp.Database = "unavailable"
			writeJSON(w, r, http.StatusServiceUnavailable, resp)
			return
		}

		resp.Database = "ok"
		writeJSON(w, r, http.StatusOK, resp)
	})
}
