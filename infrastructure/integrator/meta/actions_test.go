package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

func TestExtractMetricSumsAllMatchingAliases(t *testing.T) {
	actions := []metadomain.Action{
		{ActionType: "purchase", Value: "3"},
		{ActionType: "offsite_conversion.purchase", Value: "2"},
		{ActionType: "link_click", Value: "40"},
	}

	assert.Equal(t, 5.0, ExtractMetric(actions, MetricPurchase))
	assert.Equal(t, 40.0, ExtractMetric(actions, MetricLinkClick))
}

func TestExtractMetricMissingOrEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ExtractMetric(nil, MetricPurchase))
	assert.Equal(t, 0.0, ExtractMetric([]metadomain.Action{}, MetricPurchase))

	actions := []metadomain.Action{
		{ActionType: "video_view", Value: "10"},
	}
	assert.Equal(t, 0.0, ExtractMetric(actions, MetricPurchase))
}

func TestExtractMetricIgnoresUnparsableValues(t *testing.T) {
	actions := []metadomain.Action{
		{ActionType: "purchase", Value: "abc"},
		{ActionType: "omni_purchase", Value: "7"},
	}

	assert.Equal(t, 7.0, ExtractMetric(actions, MetricPurchase))
}

func TestSumActionsUnknownMetric(t *testing.T) {
	actions := []metadomain.Action{{ActionType: "purchase", Value: "1"}}
	assert.Equal(t, 0.0, ExtractMetric(actions, "unknown_metric"))
}
