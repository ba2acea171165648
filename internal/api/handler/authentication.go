package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/ads-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-report-api/pkg/apiErrors"
	"github.com/vfg2006/ads-report-api/pkg/log"
)

type LoginRequest struct {
	Password string `json:"password"`
}

// Login autentica com a credencial única do dashboard e emite o token.
func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Password)
		if err != nil {
			switch {
			case errors.Is(err, authenticating.ErrAuthDisabled):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Autenticação desabilitada neste ambiente", nil)
			case errors.Is(err, authenticating.ErrInvalidCredentials):
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
			default:
				writeServiceError(w, logger, err)
			}
			return
		}

		writeJSON(w, logger, map[string]string{
			"token": token,
		})
	})
}
