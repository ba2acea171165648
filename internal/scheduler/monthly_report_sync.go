package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
)

// ReportBuilder é a visão que o agendador tem do serviço de relatórios.
type ReportBuilder interface {
	BuildReport(accountID, month string, level domain.Level, topN int) (*domain.Report, error)
}

// MonthlyReportSyncConfig representa a configuração do agendador de
// pré-geração de relatórios mensais.
type MonthlyReportSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
	AccountIDs          []string
}

// MonthlyReportSyncService pré-gera o relatório do mês anterior das contas
// configuradas, respeitando a janela mínima por conta.
type MonthlyReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              MonthlyReportSyncConfig
	reportService       ReportBuilder
	throttle            *reporting.Throttle
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewMonthlyReportSyncService cria uma nova instância do serviço de
// pré-geração mensal de relatórios.
func NewMonthlyReportSyncService(
	reportService ReportBuilder,
	throttle *reporting.Throttle,
	appConfig *config.Config,
) *MonthlyReportSyncService {
	syncConfig := MonthlyReportSyncConfig{
		CronSchedule:        appConfig.ReportSync.CronSchedule,
		RequestDelaySeconds: appConfig.ReportSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.ReportSync.Enabled,
		AccountIDs:          appConfig.ReportSync.AccountIDs,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
		"accounts":              len(syncConfig.AccountIDs),
	}).Info("Configuração do agendador de relatórios mensais carregada")

	return &MonthlyReportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		reportService: reportService,
		throttle:      throttle,
		syncRunning:   false,
	}
}

// Start inicia o agendador
func (s *MonthlyReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Pré-geração mensal de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatórios mensais")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncMonthlyReports()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar pré-geração mensal de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatórios mensais")
		s.scheduler.Stop()
	}()

	return nil
}

// syncMonthlyReports gera o relatório do mês anterior para cada conta
// configurada, uma por vez, com pausa entre as contas.
func (s *MonthlyReportSyncService) syncMonthlyReports() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pré-geração mensal de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	if len(s.config.AccountIDs) == 0 {
		logrus.Info("Nenhuma conta configurada para pré-geração mensal de relatórios")
		return
	}

	logrus.WithField("accounts", len(s.config.AccountIDs)).Info("Iniciando pré-geração mensal de relatórios")

	for _, accountID := range s.config.AccountIDs {
		if accountID == "" {
			continue
		}

		s.processAccount(accountID)

		// Pausa entre contas para evitar excesso de requisições
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	logrus.Info("Pré-geração mensal de relatórios concluída")
}

// processAccount gera o relatório do mês anterior de uma conta. Conta dentro
// da janela mínima é pulada sem erro.
func (s *MonthlyReportSyncService) processAccount(accountID string) {
	if err := s.throttle.Check(accountID); err != nil {
		if throttled, ok := err.(*reporting.ThrottledError); ok {
			logrus.WithFields(logrus.Fields{
				"account_id":     accountID,
				"days_remaining": throttled.DaysRemaining,
			}).Info("Conta dentro da janela mínima, pulando pré-geração")
			return
		}

		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao verificar janela de geração da conta")
		return
	}

	// Mês vazio resolve para o mês anterior
	report, err := s.reportService.BuildReport(accountID, "", domain.DefaultLevel, 0)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao pré-gerar relatório mensal da conta")
		return
	}

	if err := s.throttle.Record(accountID); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("Erro ao registrar geração do relatório da conta")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"since":      report.Since,
		"until":      report.Until,
		"groups":     len(report.Breakdown),
	}).Info("Relatório mensal pré-gerado com sucesso")
}

// TriggerManualSync inicia manualmente uma pré-geração de relatórios
func (s *MonthlyReportSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Pré-geração mensal de relatórios já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando pré-geração manual de relatórios mensais")
	go s.syncMonthlyReports()
}

// GetStatus retorna o status atual da pré-geração
func (s *MonthlyReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"accounts":               len(s.config.AccountIDs),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
