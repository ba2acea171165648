package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/ads-report-api/internal/api/handler/router"
	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/summarizing"
	"github.com/vfg2006/ads-report-api/internal/usecases/viewing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Reports(service *reporting.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/reports/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlyReport(service),
		},
		{
			Path:    "/insights/monthly",
			Method:  http.MethodGet,
			Handler: GetMonthlyInsights(service),
		},
		{
			Path:    "/debug/ad-accounts",
			Method:  http.MethodGet,
			Handler: ListAdAccounts(service),
		},
	}
}

func ViewConfigs(service *viewing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/config/view",
			Method:  http.MethodGet,
			Handler: GetViewConfig(service),
		},
		{
			Path:    "/config/view",
			Method:  http.MethodPut,
			Handler: SaveViewConfig(service),
		},
	}
}

func Summaries(service *summarizing.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/summary/monthly",
			Method:  http.MethodPost,
			Handler: PostMonthlySummary(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
