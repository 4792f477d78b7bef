// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-calculator-api/infrastructure/repository"
	"github.com/vfg2006/profit-calculator-api/internal/config"
	"github.com/vfg2006/profit-calculator-api/internal/domain"
)

// JobWaitlistDigest é o identificador usado pela rota de execução manual
const JobWaitlistDigest = "waitlist-digest"

// firstDigestWindow é o período coberto pelo primeiro resumo após o boot
const firstDigestWindow = 24 * time.Hour

var ErrDigestRunning = errors.New("resumo da lista de espera já em execução")

type WaitlistDigestConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type WaitlistDigestService struct {
	scheduler           *gocron.Scheduler
	waitlistRepo        repository.WaitlistRepository
	config              WaitlistDigestConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDigest          *domain.WaitlistDigest
}

func NewWaitlistDigestService(
	waitlistRepo repository.WaitlistRepository,
	cfg *config.Config,
) *WaitlistDigestService {
	digestConfig := WaitlistDigestConfig{
		CronSchedule: cfg.WaitlistDigest.CronSchedule, // Default: 8h todos os dias
		SyncEnabled:  cfg.WaitlistDigest.Enabled,      // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
	}).Info("Configuração do agendador do resumo da lista de espera carregada")

	return &WaitlistDigestService{
		scheduler:    gocron.NewScheduler(time.Local),
		waitlistRepo: waitlistRepo,
		config:       digestConfig,
		now:          time.Now,
	}
}

func (s *WaitlistDigestService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron do resumo da lista de espera desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do resumo da lista de espera")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunDigest(); err != nil {
			logrus.WithError(err).Error("Erro no resumo da lista de espera")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resumo da lista de espera: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do resumo da lista de espera")
		s.scheduler.Stop()
	}()

	return nil
}

// RunDigest conta as inscrições desde o último resumo e registra o resultado
func (s *WaitlistDigestService) RunDigest() (*domain.WaitlistDigest, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Resumo da lista de espera já está em execução")
		return nil, ErrDigestRunning
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	since := s.nextWindowStart()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	until := s.now()

	newSignups, err := s.waitlistRepo.CountEntries(&since)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar novas inscrições: %w", err)
	}

	total, err := s.waitlistRepo.CountEntries(nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar inscrições: %w", err)
	}

	digest := &domain.WaitlistDigest{
		Since:        &since,
		Until:        until,
		NewSignups:   newSignups,
		TotalSignups: total,
	}

	s.syncMutex.Lock()
	s.lastDigest = digest
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"since":         since.Format(time.RFC3339),
		"until":         until.Format(time.RFC3339),
		"new_signups":   newSignups,
		"total_signups": total,
	}).Info("Resumo da lista de espera")

	return digest, nil
}

// nextWindowStart deve ser chamado com syncMutex travado
func (s *WaitlistDigestService) nextWindowStart() time.Time {
	if s.lastDigest != nil {
		return s.lastDigest.Until
	}
	return s.now().Add(-firstDigestWindow)
}

// TriggerManualSync inicia manualmente um resumo da lista de espera
func (s *WaitlistDigestService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resumo da lista de espera já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando resumo manual da lista de espera")
	go func() {
		if _, err := s.RunDigest(); err != nil && !errors.Is(err, ErrDigestRunning) {
			logrus.WithError(err).Error("Erro no resumo manual da lista de espera")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *WaitlistDigestService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_digest":            s.lastDigest,
	}
}
