package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

// GetMonthlyReport monta o relatório mensal agregado da conta.
func GetMonthlyReport(service *reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id é obrigatório", nil)
			return
		}

		level, err := domain.ParseLevel(r.URL.Query().Get("level"))
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"level":      r.URL.Query().Get("level"),
			}).Warn("report: invalid level parameter")

			writeServiceError(w, logger, err)
			return
		}

		topN := 0
		if top := r.URL.Query().Get("top"); top != "" {
			topN, err = strconv.Atoi(top)
			if err != nil || topN < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "top deve ser um inteiro não negativo", nil)
				return
			}
		}

		month := r.URL.Query().Get("month")

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"month":      month,
			"level":      level,
			"top":        topN,
		}).Info("report: building monthly report")

		report, err := service.BuildReport(accountID, month, level, topN)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("report: failed to build monthly report")

			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, report)
	})
}
