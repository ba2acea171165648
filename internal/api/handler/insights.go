package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

// GetMonthlyInsights retorna as linhas normalizadas do mês, sem agrupamento.
func GetMonthlyInsights(service *reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id é obrigatório", nil)
			return
		}

		level, err := domain.ParseLevel(r.URL.Query().Get("level"))
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		page, err := service.MonthlyInsights(accountID, r.URL.Query().Get("month"), level)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("insights: failed to fetch monthly insights")

			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, page)
	})
}
