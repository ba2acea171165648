package meta

import (
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// Nomes canônicos das métricas derivadas de ações.
const (
	MetricPurchase         = "purchase"
	MetricAddToCart        = "add_to_cart"
	MetricInitiateCheckout = "initiate_checkout"
	MetricLandingPageView  = "landing_page_view"
	MetricLinkClick        = "link_click"
)

// metricAliases mapeia cada métrica canônica para o conjunto ordenado de
// action_types aceitos. A API reporta a mesma conversão sob nomes que variam
// por configuração de pixel, então a extração soma todos os aliases que
// aparecerem na linha em vez de parar no primeiro.
var metricAliases = map[string][]string{
	MetricPurchase: {
		"purchase",
		"omni_purchase",
		"offsite_conversion.purchase",
		"offsite_conversion.fb_pixel_purchase",
	},
	MetricAddToCart: {
		"add_to_cart",
		"omni_add_to_cart",
		"offsite_conversion.fb_pixel_add_to_cart",
	},
	MetricInitiateCheckout: {
		"initiate_checkout",
		"omni_initiated_checkout",
		"offsite_conversion.fb_pixel_initiate_checkout",
	},
	MetricLandingPageView: {
		"landing_page_view",
	},
	MetricLinkClick: {
		"link_click",
	},
}

// SumActions soma os valores de todas as entradas cujo tipo casa com algum
// dos aliases. Lista ausente ou nenhum match resulta em 0, nunca erro.
func SumActions(list []metadomain.Action, aliases []string) float64 {
	if len(list) == 0 || len(aliases) == 0 {
		return 0
	}

	matched := make(map[string]bool, len(aliases))
	for _, alias := range aliases {
		matched[alias] = true
	}

	var total float64
	for i := range list {
		if matched[list[i].ActionType] {
			total += utils.ToNumber(list[i].Value)
		}
	}

	return total
}

// ExtractMetric resolve uma métrica canônica sobre a lista de ações.
func ExtractMetric(list []metadomain.Action, metric string) float64 {
	return SumActions(list, metricAliases[metric])
}
