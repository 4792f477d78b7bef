package waitlisting

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profit-calculator-api/infrastructure/repository"
	"github.com/vfg2006/profit-calculator-api/internal/config"
	"github.com/vfg2006/profit-calculator-api/internal/domain"
	"github.com/vfg2006/profit-calculator-api/pkg/apiErrors"
	"github.com/vfg2006/profit-calculator-api/pkg/utils"
	"github.com/vfg2006/profit-calculator-api/pkg/validation"
)

const (
	MessageJoined        = "Inscrição realizada com sucesso"
	MessageAlreadyJoined = "Email já está na lista de espera"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type Waitlister interface {
	Join(req *domain.WaitlistRequest) (*domain.WaitlistResponse, error)
	List(limit, offset int, since *time.Time) (*domain.WaitlistPage, error)
}

type Service struct {
	waitlistRepository repository.WaitlistRepository
	validator          *validation.Validator
	cfg                config.Waitlist
	generateID         func() (string, error)
}

func NewService(waitlistRepository repository.WaitlistRepository, cfg config.Waitlist) Waitlister {
	return &Service{
		waitlistRepository: waitlistRepository,
		validator:          validation.Default(),
		cfg:                cfg,
		generateID:         utils.GenerateID,
	}
}

func (s *Service) Join(req *domain.WaitlistRequest) (*domain.WaitlistResponse, error) {
	if req == nil {
		return nil, NewWaitlistError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "corpo da requisição ausente")
	}

	normalized := &domain.WaitlistRequest{
		Email:  normalizeEmail(req.Email),
		Source: strings.TrimSpace(req.Source),
	}

	if err := s.validator.Struct(normalized); err != nil {
		fields := validation.FieldErrors(err)
		if _, ok := fields["email"]; ok {
			return nil, NewWaitlistError(ErrInvalidEmail, apiErrors.ErrInvalidFormat, "Informe um email válido")
		}
		return nil, NewWaitlistError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, err.Error())
	}

	existing, err := s.waitlistRepository.GetEntryByEmail(normalized.Email)
	if err != nil {
		logrus.WithError(err).Error("waitlist: erro ao consultar inscrição")
		return nil, NewWaitlistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar lista de espera")
	}

	if existing != nil {
		return alreadyJoined(), nil
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewWaitlistError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	created, err := s.waitlistRepository.CreateEntry(&domain.WaitlistEntry{
		ID:     id,
		Email:  normalized.Email,
		Source: normalized.Source,
	})
	if err != nil {
		logrus.WithError(err).Error("waitlist: erro ao salvar inscrição")
		return nil, NewWaitlistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao salvar inscrição")
	}

	// Inscrição concorrente com o mesmo email
	if created == nil {
		return alreadyJoined(), nil
	}

	logrus.WithField("source", created.Source).Info("waitlist: nova inscrição")

	return &domain.WaitlistResponse{
		Success: true,
		Message: MessageJoined,
	}, nil
}

// List pagina as inscrições mais recentes; since restringe a partir de uma data
func (s *Service) List(limit, offset int, since *time.Time) (*domain.WaitlistPage, error) {
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.waitlistRepository.ListEntries(&domain.WaitlistFilters{
		Since:  since,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logrus.WithError(err).Error("waitlist: erro ao listar inscrições")
		return nil, NewWaitlistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar lista de espera")
	}

	total, err := s.waitlistRepository.CountEntries(since)
	if err != nil {
		logrus.WithError(err).Error("waitlist: erro ao contar inscrições")
		return nil, NewWaitlistError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao contar lista de espera")
	}

	return &domain.WaitlistPage{
		Entries: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}, nil
}

func alreadyJoined() *domain.WaitlistResponse {
	return &domain.WaitlistResponse{
		Success:       true,
		Message:       MessageAlreadyJoined,
		AlreadyJoined: true,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
