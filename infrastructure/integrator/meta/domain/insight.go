package metadomain

// Action é uma entrada da lista heterogênea de ações da API do Meta:
// um tipo textual e um valor numérico serializado como string.
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// RawInsight é uma linha crua de insights como retornada pela API, com os
// numéricos ainda em string. Os campos de entidade vêm preenchidos conforme
// o level solicitado na consulta.
type RawInsight struct {
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`

	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`

	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	AdsetID      string `json:"adset_id"`
	AdsetName    string `json:"adset_name"`
	AdID         string `json:"ad_id"`
	AdName       string `json:"ad_name"`

	Spend            string `json:"spend"`
	Impressions      string `json:"impressions"`
	Clicks           string `json:"clicks"`
	Reach            string `json:"reach"`
	Frequency        string `json:"frequency"`
	InlineLinkClicks string `json:"inline_link_clicks"`

	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
	PurchaseROAS []Action `json:"purchase_roas"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
}
