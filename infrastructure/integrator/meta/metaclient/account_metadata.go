package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

// GetAccountMetadata busca nome e moeda da conta. O chamador trata a falha
// como degradação parcial, então aqui só se reporta o erro.
func (c *MetaClient) GetAccountMetadata(accountID string) (*metadomain.AccountMetadata, error) {
	baseURL := fmt.Sprintf("%s/act_%s", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", "name,currency")
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

	var metadata metadomain.AccountMetadata
	if err := json.Unmarshal(body, &metadata); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return &metadata, nil
}
