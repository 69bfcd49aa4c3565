package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/infrastructure/integrator/meta"
	"github.com/inpulse/inpulse-api/infrastructure/integrator/meta/metaclient"
	"github.com/inpulse/inpulse-api/infrastructure/repository"
	"github.com/inpulse/inpulse-api/infrastructure/session"
	"github.com/inpulse/inpulse-api/internal/api"
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
)

func main() {
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	revocations := revocationStore(ctx, cfg.Redis)

	userRepo := repository.NewUserRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)
	teamRepo := repository.NewTeamRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	notificationRepo := repository.NewNotificationRepository(pgConn)
	integrationRepo := repository.NewIntegrationRepository(pgConn)
	messageRepo := repository.NewMessageRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, revocations, cfg.Auth)
	dashboard := dashboarding.NewService(repository.NewRecordStore(pgConn), dashboarding.SystemClock{}, cfg.Dashboard.WindowDays)

	metaIntegrator := meta.New(metaclient.NewClient(cfg.Meta))
	campaignSync := scheduler.NewCampaignSyncService(integrationRepo, campaignRepo, metaIntegrator, cfg.CampaignSync)

	if err := campaignSync.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de campanhas")
	} else {
		logrus.Info("Agendador de sincronização de campanhas iniciado com sucesso")
	}

	jobs := scheduler.NewRegistry()
	jobs.Register(scheduler.JobCampaignSync, campaignSync)

	server, err := api.New(cfg, api.Services{
		Database:      pgConn,
		Authenticator: authenticator,
		Dashboard:     dashboard,
		Tasks:         tasking.NewService(taskRepo, notificationRepo),
		Catalog:       selling.NewService(saleRepo, campaignRepo, productRepo),
		Team:          teaming.NewService(teamRepo),
		Integrations:  integrating.NewService(integrationRepo),
		Messaging:     messaging.NewService(messageRepo, userRepo),
		CampaignSync:  campaignSync,
		Jobs:          jobs,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// revocationStore conecta ao Redis. Sem Redis o logout não revoga tokens.
func revocationStore(ctx context.Context, cfg config.Redis) session.RevocationStore {
	client, err := session.NewRedisClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, revogação de tokens desabilitada")
		return nil
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return session.NewRevocationStore(client)
}
