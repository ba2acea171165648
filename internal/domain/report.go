package domain

import (
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// AccountInfo identifica a conta do relatório. Nome e moeda podem ser nulos
// quando a busca de metadados falha (degradação parcial, nunca aborta).
type AccountInfo struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Currency *string `json:"currency"`
}

// ReportSummary acumula os contadores brutos de um conjunto de linhas e
// carrega os KPIs derivados. Os campos de razão usam ponteiros: nil indica
// razão indefinida (denominador <= 0), nunca infinito ou NaN.
type ReportSummary struct {
	Spend            float64 `json:"spend"`
	Impressions      float64 `json:"impressions"`
	Clicks           float64 `json:"clicks"`
	Reach            float64 `json:"reach"`
	LinkClicks       float64 `json:"link_clicks"`
	Purchases        float64 `json:"purchases"`
	PurchaseValue    float64 `json:"purchase_value"`
	AddToCart        float64 `json:"add_to_cart"`
	InitiateCheckout float64 `json:"initiate_checkout"`
	LandingPageViews float64 `json:"landing_page_views"`

	Frequency *float64 `json:"frequency"`
	CTR       *float64 `json:"ctr"`
	CPC       *float64 `json:"cpc"`
	CPM       *float64 `json:"cpm"`
	CPA       *float64 `json:"cpa"`
	ROAS      *float64 `json:"roas"`
}

// AddRow soma os contadores de uma linha ao acumulado.
func (s *ReportSummary) AddRow(row *InsightRow) {
	s.Spend += row.Spend
	s.Impressions += row.Impressions
	s.Clicks += row.Clicks
	s.Reach += row.Reach
	s.LinkClicks += row.LinkClicks
	s.Purchases += row.Purchases
	s.PurchaseValue += row.PurchaseValue
	s.AddToCart += row.AddToCart
	s.InitiateCheckout += row.InitiateCheckout
	s.LandingPageViews += row.LandingPageViews
}

// DeriveKPIs calcula os indicadores de razão a partir dos contadores
// acumulados. ROAS aqui é receita/gasto; grupos com amostras de ROAS da
// plataforma sobrescrevem o valor depois, no agregador.
func (s *ReportSummary) DeriveKPIs() {
	s.CTR = utils.ToPercent(s.Clicks, s.Impressions)
	s.CPC = utils.SafeDivide(s.Spend, s.Clicks)
	s.CPM = utils.SafeDivide(s.Spend*1000, s.Impressions)
	s.CPA = utils.SafeDivide(s.Spend, s.Purchases)
	s.ROAS = utils.SafeDivide(s.PurchaseValue, s.Spend)
	s.Frequency = utils.SafeDivide(s.Impressions, s.Reach)
}

// EntityAggregate é uma linha do breakdown: os contadores e KPIs de todas as
// InsightRows que compartilham a chave da entidade no nível solicitado.
type EntityAggregate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	ReportSummary
	Budget *float64 `json:"budget,omitempty"`
}

// Report é a resposta completa do relatório mensal.
type Report struct {
	Account   AccountInfo        `json:"account"`
	Since     string             `json:"since"`
	Until     string             `json:"until"`
	Level     Level              `json:"level"`
	Summary   *ReportSummary     `json:"summary"`
	Breakdown []*EntityAggregate `json:"breakdown"`
}

// SummaryRequest é o corpo aceito pelo endpoint de geração de resumo em
// texto: o relatório já construído, repassado para o template do prompt.
type SummaryRequest struct {
	Account   AccountInfo        `json:"account"`
	Since     string             `json:"since"`
	Until     string             `json:"until"`
	Level     Level              `json:"level"`
	Summary   *ReportSummary     `json:"summary"`
	Breakdown []*EntityAggregate `json:"breakdown"`
}
