package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/viewing"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

// GetViewConfig retorna a configuração de exibição pelo nome. Sem nome,
// lista todas as visões conhecidas.
func GetViewConfig(service *viewing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		name := r.URL.Query().Get("name")
		if name == "" && r.URL.Query().Has("all") {
			configs, err := service.List()
			if err != nil {
				writeServiceError(w, logger, err)
				return
			}
			writeJSON(w, logger, map[string]any{"data": configs})
			return
		}

		cfg, err := service.Get(name)
		if err != nil {
			if errors.Is(err, viewing.ErrUnknownViewConfig) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			logger.WithFields(log.Fields{
				"name":  name,
				"error": err.Error(),
			}).Error("viewing: failed to get view config")

			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, cfg)
	})
}

// SaveViewConfig persiste um override de configuração de exibição.
func SaveViewConfig(service *viewing.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var cfg domain.ViewConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.Save(&cfg); err != nil {
			if errors.Is(err, viewing.ErrInvalidViewConfig) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			writeServiceError(w, logger, err)
			return
		}

		logger.WithField("name", cfg.Name).Info("viewing: view config saved")

		writeJSON(w, logger, map[string]string{
			"message": "Configuração de exibição salva com sucesso",
			"name":    cfg.Name,
		})
	})
}
