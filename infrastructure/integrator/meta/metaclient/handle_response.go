package metaclient

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-report-api/infrastructure/integrator/meta/domain"
)

// HandleResponse lê o corpo da resposta e converte respostas não-2xx no
// erro tipado de upstream, preservando status e corpo.
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler o corpo da resposta")
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamErr := &metadomain.UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}

		var errResponse metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Error.Message != "" {
			upstreamErr.Detail = &errResponse.Error
		}

		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("ads API returned a non-success response")

		return nil, upstreamErr
	}

	return body, nil
}
