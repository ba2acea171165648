package metaclient

import (
	"net/http"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

type Client interface {
	GetInsights(accountID string, filters domain.InsightFilters, level domain.Level) ([]metadomain.RawInsight, error)
	GetAdAccounts() ([]metadomain.AdAccount, error)
	GetAccountMetadata(accountID string) (*metadomain.AccountMetadata, error)
	GetEntityBudget(entityID string) (*metadomain.EntityBudget, error)
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
	}
}
