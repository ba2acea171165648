package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

func TestFactoryInsightRow(t *testing.T) {
	raw := &metadomain.RawInsight{
		DateStart:        "2025-07-01",
		DateStop:         "2025-07-01",
		AccountID:        "123",
		AccountName:      "Minha Conta",
		CampaignID:       "c1",
		CampaignName:     "Campanha 1",
		Spend:            "100.50",
		Impressions:      "10000",
		Clicks:           "250",
		Reach:            "8000",
		Frequency:        "1.25",
		InlineLinkClicks: "180",
		Actions: []metadomain.Action{
			{ActionType: "purchase", Value: "3"},
			{ActionType: "offsite_conversion.purchase", Value: "2"},
			{ActionType: "add_to_cart", Value: "12"},
			{ActionType: "initiate_checkout", Value: "6"},
			{ActionType: "landing_page_view", Value: "90"},
		},
		ActionValues: []metadomain.Action{
			{ActionType: "purchase", Value: "300"},
			{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "150"},
		},
		PurchaseROAS: []metadomain.Action{
			{ActionType: "omni_purchase", Value: "4.5"},
		},
	}

	row := FactoryInsightRow(raw)

	assert.Equal(t, "123", row.AccountID)
	assert.Equal(t, "c1", row.CampaignID)
	assert.Equal(t, 100.50, row.Spend)
	assert.Equal(t, 10000.0, row.Impressions)
	assert.Equal(t, 250.0, row.Clicks)
	assert.Equal(t, 8000.0, row.Reach)
	assert.Equal(t, 180.0, row.LinkClicks)

	// Política de soma de aliases: purchase + offsite_conversion.purchase
	assert.Equal(t, 5.0, row.Purchases)
	assert.Equal(t, 450.0, row.PurchaseValue)
	assert.Equal(t, 12.0, row.AddToCart)
	assert.Equal(t, 6.0, row.InitiateCheckout)
	assert.Equal(t, 90.0, row.LandingPageViews)

	require.NotNil(t, row.PlatformROAS)
	assert.Equal(t, 4.5, *row.PlatformROAS)
}

func TestFactoryInsightRowFallbacks(t *testing.T) {
	raw := &metadomain.RawInsight{
		AccountID:   "123",
		Spend:       "not-a-number",
		Impressions: "",
		Actions: []metadomain.Action{
			{ActionType: "link_click", Value: "15"},
		},
	}

	row := FactoryInsightRow(raw)

	assert.Equal(t, 0.0, row.Spend)
	assert.Equal(t, 0.0, row.Impressions)
	assert.Equal(t, 0.0, row.Purchases)
	assert.Nil(t, row.PlatformROAS)

	// Sem inline_link_clicks, cai para a ação link_click
	assert.Equal(t, 15.0, row.LinkClicks)
}
