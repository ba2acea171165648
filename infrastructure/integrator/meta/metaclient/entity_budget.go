package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

// GetEntityBudget busca o orçamento de uma campanha ou conjunto de anúncios,
// em unidades menores da moeda.
func (c *MetaClient) GetEntityBudget(entityID string) (*metadomain.EntityBudget, error) {
	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, entityID)

	params := url.Values{}
	params.Add("fields", "daily_budget,lifetime_budget")
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	resp, err := http.Get(url)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var budget metadomain.EntityBudget
	if err := json.Unmarshal(body, &budget); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &budget, nil
}
