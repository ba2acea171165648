package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSummaryAddRowAndDeriveKPIs(t *testing.T) {
	summary := &ReportSummary{}
	summary.AddRow(&InsightRow{Spend: 100, Impressions: 10000, Clicks: 200, Reach: 5000, Purchases: 4, PurchaseValue: 300})
	summary.AddRow(&InsightRow{Spend: 50, Impressions: 5000, Clicks: 100, Reach: 2500, Purchases: 1, PurchaseValue: 100})

	summary.DeriveKPIs()

	assert.Equal(t, 150.0, summary.Spend)
	assert.Equal(t, 15000.0, summary.Impressions)

	require.NotNil(t, summary.CTR)
	assert.Equal(t, 2.0, *summary.CTR) // 300/15000 * 100

	require.NotNil(t, summary.CPC)
	assert.Equal(t, 0.5, *summary.CPC)

	require.NotNil(t, summary.CPM)
	assert.Equal(t, 10.0, *summary.CPM)

	require.NotNil(t, summary.CPA)
	assert.Equal(t, 30.0, *summary.CPA)

	require.NotNil(t, summary.ROAS)
	assert.InDelta(t, 2.6667, *summary.ROAS, 0.001)

	require.NotNil(t, summary.Frequency)
	assert.Equal(t, 2.0, *summary.Frequency)
}

func TestReportSummaryDeriveKPIsWithZeroDenominators(t *testing.T) {
	summary := &ReportSummary{Spend: 10}
	summary.DeriveKPIs()

	assert.Nil(t, summary.CTR)
	assert.Nil(t, summary.CPC)
	assert.Nil(t, summary.CPM)
	assert.Nil(t, summary.CPA)
	assert.Nil(t, summary.ROAS)
	assert.Nil(t, summary.Frequency)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelCampaign, level)

	for _, valid := range []string{"account", "campaign", "adset", "ad"} {
		level, err := ParseLevel(valid)
		require.NoError(t, err)
		assert.Equal(t, Level(valid), level)
	}

	_, err = ParseLevel("keyword")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestInsightRowEntityKey(t *testing.T) {
	row := &InsightRow{
		AccountID:    "act_1",
		AccountName:  "Conta",
		CampaignID:   "c1",
		CampaignName: "Campanha",
	}

	id, name := row.EntityKey(LevelCampaign)
	assert.Equal(t, "c1", id)
	assert.Equal(t, "Campanha", name)

	// Linha sem adset deve cair no sentinela, nunca ser descartada
	id, name = row.EntityKey(LevelAdset)
	assert.Equal(t, "unknown_adset", id)
	assert.Equal(t, "Unknown Adset", name)
}
