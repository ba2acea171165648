package reporting

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// Service monta o relatório mensal: busca as linhas de insights, agrega por
// entidade no nível solicitado, deriva os KPIs e junta os orçamentos.
type Service struct {
	cfg       *config.Config
	insighter Insighter
	budgets   BudgetFetcher
}

func NewService(
	cfg *config.Config,
	insighter Insighter,
	budgets BudgetFetcher,
) *Service {
	return &Service{
		cfg:       cfg,
		insighter: insighter,
		budgets:   budgets,
	}
}

// entityAccumulator acompanha um grupo do breakdown durante a agregação.
type entityAccumulator struct {
	aggregate   *domain.EntityAggregate
	roasSamples []float64
}

// MonthlyInsights resolve a janela do mês e retorna as linhas normalizadas
// sem agrupamento, para inspeção direta.
func (s *Service) MonthlyInsights(accountID, month string, level domain.Level) (*domain.InsightPage, error) {
	since, until, err := utils.MonthRange(month, time.Now())
	if err != nil {
		return nil, err
	}

	return s.insighter.FetchInsights(accountID, domain.InsightFilters{Since: since, Until: until}, level)
}

// BuildReport monta o relatório mensal completo para a conta. O parâmetro
// month usa o formato YYYY-MM; vazio resolve para o mês anterior. Com topN
// positivo o breakdown é truncado depois da ordenação por gasto.
func (s *Service) BuildReport(accountID, month string, level domain.Level, topN int) (*domain.Report, error) {
	since, until, err := utils.MonthRange(month, time.Now())
	if err != nil {
		return nil, err
	}

	// Metadados são enriquecimento: falha aqui não aborta o relatório.
	account := &domain.AccountInfo{ID: accountID}
	if info, err := s.insighter.GetAccountMetadata(accountID); err == nil && info != nil {
		account = info
	}

	page, err := s.insighter.FetchInsights(accountID, domain.InsightFilters{Since: since, Until: until}, level)
	if err != nil {
		return nil, err
	}

	summary := &domain.ReportSummary{}
	for _, row := range page.Data {
		summary.AddRow(row)
	}
	summary.DeriveKPIs()

	breakdown := s.groupByEntity(page.Data, level)

	// Orçamentos existem apenas em campanhas e conjuntos de anúncios; os
	// demais níveis não têm orçamento próprio na plataforma.
	if level == domain.LevelCampaign || level == domain.LevelAdset {
		s.attachBudgets(breakdown, level)
	}

	// Ordenação estável por gasto decrescente preserva a ordem de chegada
	// entre grupos empatados.
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Spend > breakdown[j].Spend
	})

	if topN > 0 && len(breakdown) > topN {
		breakdown = breakdown[:topN]
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"level":      level,
		"rows":       page.Count,
		"groups":     len(breakdown),
	}).Info("report: monthly report built")

	return &domain.Report{
		Account:   *account,
		Since:     page.Since,
		Until:     page.Until,
		Level:     level,
		Summary:   summary,
		Breakdown: breakdown,
	}, nil
}

// groupByEntity agrega as linhas pela chave da entidade do nível, na ordem em
// que cada chave aparece. Grupos com amostras de ROAS da plataforma usam a
// média das amostras no lugar da razão receita/gasto.
func (s *Service) groupByEntity(rows []*domain.InsightRow, level domain.Level) []*domain.EntityAggregate {
	groups := make(map[string]*entityAccumulator)
	order := make([]string, 0)

	for _, row := range rows {
		id, name := row.EntityKey(level)

		acc, ok := groups[id]
		if !ok {
			acc = &entityAccumulator{
				aggregate: &domain.EntityAggregate{ID: id, Name: name},
			}
			groups[id] = acc
			order = append(order, id)
		}

		acc.aggregate.AddRow(row)
		if row.PlatformROAS != nil {
			acc.roasSamples = append(acc.roasSamples, *row.PlatformROAS)
		}
	}

	breakdown := make([]*domain.EntityAggregate, 0, len(order))
	for _, id := range order {
		acc := groups[id]
		acc.aggregate.DeriveKPIs()

		if len(acc.roasSamples) > 0 {
			var total float64
			for _, sample := range acc.roasSamples {
				total += sample
			}
			mean := total / float64(len(acc.roasSamples))
			acc.aggregate.ROAS = &mean
		}

		breakdown = append(breakdown, acc.aggregate)
	}

	return breakdown
}

// attachBudgets busca os orçamentos dos grupos em paralelo, limitado por um
// pool de workers. Grupos sentinela não têm id real na plataforma e são
// pulados; falha em um grupo não afeta os demais.
func (s *Service) attachBudgets(breakdown []*domain.EntityAggregate, level domain.Level) {
	workers := s.cfg.Report.BudgetWorkers
	if workers <= 0 {
		workers = 1
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for _, entity := range breakdown {
		if entity.ID == level.UnknownID() {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(entity *domain.EntityAggregate) {
			defer wg.Done()
			defer func() { <-sem }()

			budget, err := s.budgets.GetEntityBudget(entity.ID)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"entity_id": entity.ID,
					"error":     err.Error(),
				}).Warn("report: failed to fetch entity budget")
				return
			}

			entity.Budget = budget
		}(entity)
	}

	wg.Wait()
}

// ListAdAccounts repassa a lista de contas visíveis para a credencial.
func (s *Service) ListAdAccounts() ([]*domain.AdAccountSummary, error) {
	return s.insighter.GetAdAccounts()
}
