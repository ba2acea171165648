package domain

import (
	"fmt"
	"time"
)

// Level define a granularidade de agregação de um relatório.
type Level string

const (
	LevelAccount  Level = "account"
	LevelCampaign Level = "campaign"
	LevelAdset    Level = "adset"
	LevelAd       Level = "ad"
)

// DefaultLevel é o nível usado quando a requisição não informa um.
const DefaultLevel = LevelCampaign

var (
	ErrInvalidLevel     = fmt.Errorf("nível inválido, use account, campaign, adset ou ad")
	ErrMissingAccountID = fmt.Errorf("account_id is required")
)

// ParseLevel valida o nível informado na requisição. Vazio resolve para o
// nível padrão; valores fora do conjunto são rejeitados antes de qualquer
// chamada à API de anúncios.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return DefaultLevel, nil
	}

	switch Level(s) {
	case LevelAccount, LevelCampaign, LevelAdset, LevelAd:
		return Level(s), nil
	}

	return "", ErrInvalidLevel
}

// Title retorna o nome do nível com a inicial maiúscula, para exibição.
func (l Level) Title() string {
	switch l {
	case LevelAccount:
		return "Account"
	case LevelCampaign:
		return "Campaign"
	case LevelAdset:
		return "Adset"
	case LevelAd:
		return "Ad"
	}
	return string(l)
}

// UnknownID é o id sentinela usado quando a API omite o id da entidade.
func (l Level) UnknownID() string {
	return fmt.Sprintf("unknown_%s", string(l))
}

// UnknownName é o nome de exibição do grupo sentinela.
func (l Level) UnknownName() string {
	return fmt.Sprintf("Unknown %s", l.Title())
}

// InsightFilters delimita a janela de datas de uma consulta de insights.
type InsightFilters struct {
	Since time.Time
	Until time.Time
}

// InsightRow é um registro normalizado retornado pela API de anúncios para
// uma data e uma entidade. Imutável depois de construído pelo fetcher.
type InsightRow struct {
	DateStart string `json:"date_start"`
	DateStop  string `json:"date_stop"`

	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name,omitempty"`

	CampaignID   string `json:"campaign_id,omitempty"`
	CampaignName string `json:"campaign_name,omitempty"`
	AdsetID      string `json:"adset_id,omitempty"`
	AdsetName    string `json:"adset_name,omitempty"`
	AdID         string `json:"ad_id,omitempty"`
	AdName       string `json:"ad_name,omitempty"`

	Spend       float64 `json:"spend"`
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Reach       float64 `json:"reach"`
	Frequency   float64 `json:"frequency"`
	LinkClicks  float64 `json:"link_clicks"`

	Purchases        float64 `json:"purchases"`
	PurchaseValue    float64 `json:"purchase_value"`
	AddToCart        float64 `json:"add_to_cart"`
	InitiateCheckout float64 `json:"initiate_checkout"`
	LandingPageViews float64 `json:"landing_page_views"`

	// ROAS reportado pela própria plataforma, quando presente na resposta.
	PlatformROAS *float64 `json:"platform_roas,omitempty"`
}

// EntityKey retorna o id e o nome da entidade relevantes para o nível,
// com fallback para os valores sentinela quando a API omite os campos.
func (r *InsightRow) EntityKey(level Level) (string, string) {
	var id, name string

	switch level {
	case LevelAccount:
		id, name = r.AccountID, r.AccountName
	case LevelCampaign:
		id, name = r.CampaignID, r.CampaignName
	case LevelAdset:
		id, name = r.AdsetID, r.AdsetName
	case LevelAd:
		id, name = r.AdID, r.AdName
	}

	if id == "" {
		id = level.UnknownID()
	}
	if name == "" {
		name = level.UnknownName()
	}

	return id, name
}

// InsightPage é o resultado de uma consulta de insights: a janela resolvida
// e as linhas normalizadas, sem agrupamento.
type InsightPage struct {
	Since string        `json:"since"`
	Until string        `json:"until"`
	Level Level         `json:"level"`
	Count int           `json:"count"`
	Data  []*InsightRow `json:"data"`
}

// AdAccountSummary é uma conta de anúncios visível para a credencial
// configurada, no formato do endpoint de debug.
type AdAccountSummary struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
}
