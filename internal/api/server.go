package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"

	"github.com/inpulse/inpulse-api/internal/api/handler"
	"github.com/inpulse/inpulse-api/internal/api/handler/router"
	"github.com/inpulse/inpulse-api/internal/config"
	"github.com/inpulse/inpulse-api/internal/scheduler"
	"github.com/inpulse/inpulse-api/internal/usecases/authenticating"
	"github.com/inpulse/inpulse-api/internal/usecases/dashboarding"
	"github.com/inpulse/inpulse-api/internal/usecases/integrating"
	"github.com/inpulse/inpulse-api/internal/usecases/messaging"
	"github.com/inpulse/inpulse-api/internal/usecases/selling"
	"github.com/inpulse/inpulse-api/internal/usecases/tasking"
	"github.com/inpulse/inpulse-api/internal/usecases/teaming"
	"github.com/inpulse/inpulse-api/pkg/log"
	"github.com/inpulse/inpulse-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Services struct {
	Database      handler.Pinger
	Authenticator authenticating.Authenticator
	Dashboard     dashboarding.Dashboarder
	Tasks         tasking.TaskManager
	Catalog       selling.Catalog
	Team          teaming.TeamManager
	Integrations  integrating.IntegrationManager
	Messaging     messaging.Messenger
	CampaignSync  scheduler.CampaignSyncer
	Jobs          *scheduler.Registry
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Authenticator == nil {
		return nil, errors.New("api: authenticator é obrigatório")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares globais
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.Tasks(services.Tasks)...),
		router.WithRoutes(handler.Catalog(services.Catalog)...),
		router.WithRoutes(handler.Team(services.Team)...),
		router.WithRoutes(handler.Integrations(services.Integrations)...),
		router.WithRoutes(handler.Messaging(services.Messaging)...),
		router.WithRoutes(handler.CronJobs(services.CampaignSync, services.Jobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

// Run atende requisições até receber SIGINT/SIGTERM ou ctx ser cancelado
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		log.L.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.Infof("Iniciando desligamento gracioso do servidor (timeout %s)", shutdownTimeout)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}
