package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/summarizing"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

// PostMonthlySummary gera o resumo executivo em texto do relatório enviado
// no corpo. Sujeito à janela mínima entre gerações por conta.
func PostMonthlySummary(service *summarizing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SummaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": req.Account.ID,
			"level":      req.Level,
		}).Info("summary: generating monthly summary")

		text, err := service.Summarize(&req)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": req.Account.ID,
				"error":      err.Error(),
			}).Warn("summary: generation refused or failed")

			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, map[string]string{
			"summary": text,
		})
	})
}
