package main

import (
	"context"
	"flag"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inpulse/inpulse-api/infrastructure/database/postgres"
	"github.com/inpulse/inpulse-api/infrastructure/migration"
	"github.com/inpulse/inpulse-api/infrastructure/repository"
	"github.com/inpulse/inpulse-api/internal/config"
	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/pkg/utils"
)

func main() {
	tenantID := flag.String("tenant", "", "id do usuário dono da integração")
	facebookAccount := flag.String("facebook-account", "", "id da conta de anúncios do Facebook (act_...)")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := migration.Apply(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar schema")
	}
	logrus.Infof("Schema aplicado em %s", time.Since(startTime))

	if *tenantID == "" || *facebookAccount == "" {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar id da integração")
	}

	integration := &domain.Integration{
		ID:                id,
		TenantID:          *tenantID,
		Platform:          domain.PlatformFacebook,
		ExternalAccountID: *facebookAccount,
	}
	if err := repository.NewIntegrationRepository(conn).UpsertIntegration(ctx, integration); err != nil {
		logrus.WithError(err).Fatal("Erro ao vincular conta do Facebook")
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id":  *tenantID,
		"account_id": *facebookAccount,
	}).Info("Integração com o Facebook registrada")
}
