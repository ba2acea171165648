package reporting

import (
	"github.com/vfg2006/ads-report-api/internal/domain"
)

// Insighter é a visão que o agregador tem do integrador da API de anúncios.
type Insighter interface {
	FetchInsights(accountID string, filters domain.InsightFilters, level domain.Level) (*domain.InsightPage, error)
	GetAccountMetadata(accountID string) (*domain.AccountInfo, error)
	GetAdAccounts() ([]*domain.AdAccountSummary, error)
}

// BudgetFetcher busca o orçamento configurado de uma entidade.
type BudgetFetcher interface {
	GetEntityBudget(entityID string) (*float64, error)
}
