package viewing

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/infrastructure/repository"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

var (
	ErrUnknownViewConfig = fmt.Errorf("configuração de exibição não encontrada")
	ErrInvalidViewConfig = fmt.Errorf("configuração de exibição inválida: nome e colunas são obrigatórios")
)

// Service resolve as configurações de exibição do dashboard: visões padrão
// embutidas, com overrides persistidos por nome.
type Service struct {
	repo     repository.ViewConfigRepository
	defaults map[string]*domain.ViewConfig
	names    []string
}

func NewService(repo repository.ViewConfigRepository) (*Service, error) {
	defaults, names, err := defaultLayouts()
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar visões padrão: %w", err)
	}

	return &Service{
		repo:     repo,
		defaults: defaults,
		names:    names,
	}, nil
}

// Get retorna a visão pelo nome: o override persistido quando existe, senão
// a visão padrão embutida.
func (s *Service) Get(name string) (*domain.ViewConfig, error) {
	if name == "" {
		name = "report"
	}

	saved, err := s.repo.GetByName(name)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"name":  name,
			"error": err.Error(),
		}).Error("viewing: failed to get view config from repository")
		return nil, err
	}

	if saved != nil {
		return saved, nil
	}

	if layout, ok := s.defaults[name]; ok {
		return layout, nil
	}

	return nil, ErrUnknownViewConfig
}

// List retorna todas as visões conhecidas, com os overrides persistidos no
// lugar das visões padrão de mesmo nome.
func (s *Service) List() ([]*domain.ViewConfig, error) {
	saved, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	merged := make(map[string]*domain.ViewConfig, len(s.defaults)+len(saved))
	for name, layout := range s.defaults {
		merged[name] = layout
	}
	for _, layout := range saved {
		merged[layout.Name] = layout
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	configs := make([]*domain.ViewConfig, 0, len(names))
	for _, name := range names {
		configs = append(configs, merged[name])
	}

	return configs, nil
}

// Save valida e persiste um override de visão.
func (s *Service) Save(cfg *domain.ViewConfig) error {
	if cfg == nil || cfg.Name == "" || len(cfg.Columns) == 0 {
		return ErrInvalidViewConfig
	}

	for _, column := range cfg.Columns {
		if column.Key == "" {
			return ErrInvalidViewConfig
		}
	}

	if err := s.repo.SaveOrUpdate(cfg); err != nil {
		logrus.WithFields(logrus.Fields{
			"name":  cfg.Name,
			"error": err.Error(),
		}).Error("viewing: failed to save view config")
		return err
	}

	return nil
}
