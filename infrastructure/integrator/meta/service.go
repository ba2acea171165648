package meta

import (
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchInsights emite uma consulta de insights para a conta na janela e
// nível informados e normaliza cada linha crua em InsightRow.
func (s *MetaIntegrator) FetchInsights(accountID string, filters domain.InsightFilters, level domain.Level) (*domain.InsightPage, error) {
	if accountID == "" {
		return nil, domain.ErrMissingAccountID
	}

	rawRows, err := s.Client.GetInsights(accountID, filters, level)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"level":      level,
			"error":      err.Error(),
		}).Error("insights: failed to get insights from ads API")
		return nil, err
	}

	rows := make([]*domain.InsightRow, 0, len(rawRows))
	for i := range rawRows {
		rows = append(rows, FactoryInsightRow(&rawRows[i]))
	}

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"level":      level,
		"rows":       len(rows),
	}).Debug("insights: successfully fetched and normalized insight rows")

	return &domain.InsightPage{
		Since: filters.Since.Format(time.DateOnly),
		Until: filters.Until.Format(time.DateOnly),
		Level: level,
		Count: len(rows),
		Data:  rows,
	}, nil
}

// GetAccountMetadata busca nome e moeda da conta. Erro aqui é absorvido pelo
// agregador como degradação parcial.
func (s *MetaIntegrator) GetAccountMetadata(accountID string) (*domain.AccountInfo, error) {
	metadata, err := s.Client.GetAccountMetadata(accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Warn("insights: failed to get account metadata")
		return nil, err
	}

	info := &domain.AccountInfo{ID: accountID}
	if metadata.Name != "" {
		info.Name = &metadata.Name
	}
	if metadata.Currency != "" {
		info.Currency = &metadata.Currency
	}

	return info, nil
}

// GetAdAccounts lista as contas visíveis para a credencial configurada.
func (s *MetaIntegrator) GetAdAccounts() ([]*domain.AdAccountSummary, error) {
	adAccounts, err := s.Client.GetAdAccounts()
	if err != nil {
		logrus.WithError(err).Error("insights: failed to list ad accounts")
		return nil, err
	}

	accounts := make([]*domain.AdAccountSummary, 0, len(adAccounts))
	for _, adAccount := range adAccounts {
		accounts = append(accounts, &domain.AdAccountSummary{
			ID:        adAccount.ID,
			AccountID: adAccount.AccountID,
			Name:      adAccount.Name,
			Currency:  adAccount.Currency,
		})
	}

	logrus.WithField("total_accounts", len(accounts)).Info("insights: successfully retrieved ad accounts")

	return accounts, nil
}

// GetEntityBudget busca o orçamento de uma entidade e converte de unidades
// menores para a moeda. Orçamento ausente ou não positivo resulta em nil.
func (s *MetaIntegrator) GetEntityBudget(entityID string) (*float64, error) {
	raw, err := s.Client.GetEntityBudget(entityID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"error":     err.Error(),
		}).Warn("insights: failed to get entity budget")
		return nil, err
	}

	minorUnits := utils.ToNumber(raw.DailyBudget)
	if minorUnits <= 0 {
		minorUnits = utils.ToNumber(raw.LifetimeBudget)
	}

	if minorUnits <= 0 {
		return nil, nil
	}

	budget := utils.RoundWithTwoDecimalPlace(minorUnits / 100)
	return &budget, nil
}

// FactoryInsightRow converte uma linha crua da API no registro normalizado,
// resolvendo as métricas derivadas de ações pelo extrator de aliases.
func FactoryInsightRow(raw *metadomain.RawInsight) *domain.InsightRow {
	row := &domain.InsightRow{
		DateStart:    raw.DateStart,
		DateStop:     raw.DateStop,
		AccountID:    raw.AccountID,
		AccountName:  raw.AccountName,
		CampaignID:   raw.CampaignID,
		CampaignName: raw.CampaignName,
		AdsetID:      raw.AdsetID,
		AdsetName:    raw.AdsetName,
		AdID:         raw.AdID,
		AdName:       raw.AdName,

		Spend:       utils.ToNumber(raw.Spend),
		Impressions: utils.ToNumber(raw.Impressions),
		Clicks:      utils.ToNumber(raw.Clicks),
		Reach:       utils.ToNumber(raw.Reach),
		Frequency:   utils.ToNumber(raw.Frequency),

		Purchases:        ExtractMetric(raw.Actions, MetricPurchase),
		PurchaseValue:    ExtractMetric(raw.ActionValues, MetricPurchase),
		AddToCart:        ExtractMetric(raw.Actions, MetricAddToCart),
		InitiateCheckout: ExtractMetric(raw.Actions, MetricInitiateCheckout),
		LandingPageViews: ExtractMetric(raw.Actions, MetricLandingPageView),
	}

	row.LinkClicks = utils.ToNumber(raw.InlineLinkClicks)
	if row.LinkClicks == 0 {
		row.LinkClicks = ExtractMetric(raw.Actions, MetricLinkClick)
	}

	if len(raw.PurchaseROAS) > 0 {
		if sample := utils.ToNumber(raw.PurchaseROAS[0].Value); sample > 0 {
			row.PlatformROAS = &sample
		}
	}

	return row
}
