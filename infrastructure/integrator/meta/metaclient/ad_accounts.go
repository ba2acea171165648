package metaclient

import (
	"encoding/json"
	"fmt"

	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// GetAdAccounts lista as contas de anúncios visíveis para a credencial
// configurada (limite de 50, como no endpoint de debug original).
func (c *MetaClient) GetAdAccounts() ([]metadomain.AdAccount, error) {
	url := fmt.Sprintf("%s/me/adaccounts?limit=50&fields=name,account_id,currency&access_token=%s", c.Cfg.Meta.URL, c.Cfg.Meta.AccessToken)

	data, err := utils.MakeRequest(url)
	if err != nil {
		return nil, err
	}

	var response struct {
		Data []metadomain.AdAccount `json:"data"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, err
	}

	return response.Data, nil
}
