package handler

import (
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

// ListAdAccounts lista as contas de anúncio visíveis para a credencial
// configurada. Rota de diagnóstico.
func ListAdAccounts(service *reporting.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		accounts, err := service.ListAdAccounts()
		if err != nil {
			logger.WithField("error", err.Error()).Error("accounts: failed to list ad accounts")
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, map[string]any{
			"data": accounts,
		})
	})
}
