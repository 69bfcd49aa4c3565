package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/inpulse/inpulse-api/infrastructure/integrator/meta"
	"github.com/inpulse/inpulse-api/infrastructure/repository"
	"github.com/inpulse/inpulse-api/internal/config"
	"github.com/inpulse/inpulse-api/internal/domain"
	"github.com/inpulse/inpulse-api/pkg/log"
	"github.com/inpulse/inpulse-api/pkg/metrics"
)

var (
	ErrSyncInProgress      = errors.New("sincronização já em andamento")
	ErrIntegrationNotFound = errors.New("integração com o Facebook não encontrada")
)

// CampaignSyncConfig representa a configuração do agendador de campanhas
type CampaignSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

type CampaignSyncer interface {
	Start(ctx context.Context) error
	TriggerManualSync() bool
	SyncTenant(ctx context.Context, tenantID string) (int, error)
	GetStatus() map[string]any
}

// CampaignSyncService agenda e executa a sincronização das campanhas do Meta
type CampaignSyncService struct {
	scheduler       *gocron.Scheduler
	config          CampaignSyncConfig
	integrationRepo repository.IntegrationRepository
	campaignRepo    repository.CampaignRepository
	integrator      meta.Integrator
	now             func() time.Time
	sleep           func(time.Duration)

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncedCampaigns int
}

func NewCampaignSyncService(
	integrationRepo repository.IntegrationRepository,
	campaignRepo repository.CampaignRepository,
	integrator meta.Integrator,
	cfg config.CampaignSync,
) *CampaignSyncService {
	syncConfig := CampaignSyncConfig{
		CronSchedule:        cfg.CronSchedule,
		LookbackDays:        cfg.LookbackDays,
		RequestDelaySeconds: cfg.RequestDelaySeconds,
		MaxConcurrentJobs:   cfg.MaxConcurrentJobs,
		SyncEnabled:         cfg.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}
	if syncConfig.LookbackDays <= 0 {
		syncConfig.LookbackDays = 30
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de campanhas carregada")

	return &CampaignSyncService{
		scheduler:       gocron.NewScheduler(time.UTC),
		config:          syncConfig,
		integrationRepo: integrationRepo,
		campaignRepo:    campaignRepo,
		integrator:      integrator,
		now:             time.Now,
		sleep:           time.Sleep,
	}
}

// Start agenda a sincronização periódica e para o agendador quando ctx é cancelado
func (s *CampaignSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Sincronização de campanhas desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de campanhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllTenants(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de campanhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de sincronização de campanhas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CampaignSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

func (s *CampaignSyncService) release(synced int) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastSyncedCampaigns = synced
}

// syncAllTenants sincroniza as campanhas de todos os tenants com integração ativa
func (s *CampaignSyncService) syncAllTenants(ctx context.Context) {
	if !s.acquire() {
		log.ForContext(ctx).Info("Sincronização de campanhas já em andamento, ignorando")
		return
	}

	s.runAll(ctx)
}

func (s *CampaignSyncService) runAll(ctx context.Context) {
	logger := log.ForContext(ctx)
	startTime := s.now()

	var (
		total   int
		totalMu sync.Mutex
	)
	defer func() { s.release(total) }()

	integrations, err := s.integrationRepo.ListIntegrations(ctx, domain.PlatformFacebook)
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar integrações para sincronização de campanhas")
		return
	}

	if len(integrations) == 0 {
		logger.Info("Nenhuma integração encontrada para sincronização de campanhas")
		return
	}

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

dispatch:
	for _, integration := range integrations {
		if integration.ExternalAccountID == "" {
			logger.WithField("integration_id", integration.ID).Warn("Integração sem conta de anúncios. Pulando.")
			continue
		}

		if ctx.Err() != nil {
			logger.Warn("Sincronização de campanhas cancelada, integrações restantes ignoradas")
			break
		}

		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			logger.Warn("Sincronização de campanhas cancelada, integrações restantes ignoradas")
			break dispatch
		}

		wg.Add(1)
		go func(in *domain.Integration) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			synced, err := s.syncIntegration(ctx, in)
			if err != nil {
				return
			}

			totalMu.Lock()
			total += synced
			totalMu.Unlock()

			s.sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(integration)
	}

	wg.Wait()

	logger.WithFields(log.Fields{
		"duration":     s.now().Sub(startTime).String(),
		"integrations": len(integrations),
		"campaigns":    total,
	}).Info("Sincronização de campanhas concluída")
}

// syncIntegration busca e grava as campanhas de uma conta de anúncios
func (s *CampaignSyncService) syncIntegration(ctx context.Context, integration *domain.Integration) (int, error) {
	until := s.now().UTC()
	since := until.AddDate(0, 0, -s.config.LookbackDays)

	fields := log.Fields{
		"tenant_id":  integration.TenantID,
		"account_id": integration.ExternalAccountID,
	}

	campaigns, err := s.integrator.FetchCampaigns(ctx, integration.TenantID, integration.ExternalAccountID, since, until)
	if err != nil {
		metrics.RecordCampaignSync(domain.PlatformFacebook, 0, err)
		log.ForContext(ctx).WithFields(fields).WithError(err).Error("Erro ao obter campanhas do Meta")
		return 0, err
	}

	if err := s.campaignRepo.UpsertCampaigns(ctx, campaigns); err != nil {
		metrics.RecordCampaignSync(domain.PlatformFacebook, 0, err)
		log.ForContext(ctx).WithFields(fields).WithError(err).Error("Erro ao salvar campanhas no banco de dados")
		return 0, err
	}

	metrics.RecordCampaignSync(domain.PlatformFacebook, len(campaigns), nil)
	log.ForContext(ctx).WithFields(fields).WithField("campaigns", len(campaigns)).Info("Campanhas sincronizadas com sucesso")

	return len(campaigns), nil
}

// SyncTenant sincroniza imediatamente as campanhas de um único tenant
func (s *CampaignSyncService) SyncTenant(ctx context.Context, tenantID string) (int, error) {
	integration, err := s.integrationRepo.GetIntegration(ctx, tenantID, domain.PlatformFacebook)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar integração: %w", err)
	}

	if integration == nil || integration.ExternalAccountID == "" {
		return 0, ErrIntegrationNotFound
	}

	return s.syncIntegration(ctx, integration)
}

// TriggerManualSync inicia uma sincronização global em segundo plano.
// Retorna false se já houver uma em andamento.
func (s *CampaignSyncService) TriggerManualSync() bool {
	if !s.acquire() {
		log.L.Info("Sincronização de campanhas já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando sincronização manual de campanhas")
	go s.runAll(context.Background())

	return true
}

// GetStatus retorna o status atual do agendador
func (s *CampaignSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_synced_campaigns":  s.lastSyncedCampaigns,
	}
}
