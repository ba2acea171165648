package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
)

const baseInsightFields = "account_id,account_name,spend,impressions,clicks,reach,frequency,inline_link_clicks,actions,action_values,purchase_roas,date_start,date_stop"

// Campos adicionais de entidade por nível de agregação.
var levelInsightFields = map[domain.Level]string{
	domain.LevelAccount:  "",
	domain.LevelCampaign: ",campaign_id,campaign_name",
	domain.LevelAdset:    ",campaign_id,campaign_name,adset_id,adset_name",
	domain.LevelAd:       ",campaign_id,campaign_name,adset_id,adset_name,ad_id,ad_name",
}

type ResponseInsights struct {
	Data   []metadomain.RawInsight `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// GetInsights emite exatamente uma consulta de insights para a conta, com
// granularidade diária e o limite fixo de linhas. Linhas além do limite são
// descartadas pela API; não há paginação nem retry.
func (c *MetaClient) GetInsights(accountID string, filters domain.InsightFilters, level domain.Level) ([]metadomain.RawInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, accountID)

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.Since.Format(time.DateOnly), filters.Until.Format(time.DateOnly))

	params := url.Values{}
	params.Add("fields", baseInsightFields+levelInsightFields[level])
	params.Add("level", string(level))
	params.Add("time_increment", "1")
	params.Add("limit", strconv.Itoa(c.Cfg.Report.InsightsRowLimit))
	params.Add("time_range", timeRange)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	url := baseURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.HandleResponse(resp)
	if err != nil {
		return nil, err
	}

	var response ResponseInsights
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return response.Data, nil
}
