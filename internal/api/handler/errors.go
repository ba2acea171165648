package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/internal/usecases/summarizing"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON serializa a resposta de sucesso.
func writeJSON(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithField("error", err.Error()).Error("handler: failed to encode response")
	}
}

// writeServiceError traduz os erros dos casos de uso para os códigos da API.
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var throttled *reporting.ThrottledError
	if errors.As(err, &throttled) {
		apiErrors.WriteError(w, apiErrors.ErrReportThrottled, throttled.Error(), map[string]any{
			"days_remaining": throttled.DaysRemaining,
		})
		return
	}

	var upstream *metadomain.UpstreamError
	if errors.As(err, &upstream) {
		logger.WithFields(log.Fields{
			"upstream_status": upstream.StatusCode,
			"error":           err.Error(),
		}).Error("handler: upstream service error")

		apiErrors.WriteError(w, apiErrors.ErrUpstreamService, "A API de anúncios retornou um erro", map[string]any{
			"status": upstream.StatusCode,
			"detail": upstream.Detail,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidLevel):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, utils.ErrInvalidMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, domain.ErrMissingAccountID):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, summarizing.ErrIntegrationUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrIntegrationUnavailable, err.Error(), nil)
	default:
		logger.WithField("error", err.Error()).Error("handler: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
