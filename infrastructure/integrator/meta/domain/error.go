package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// UpstreamError é uma resposta não-2xx da API de anúncios, carregando o
// status HTTP e o corpo para o chamador decidir como expor.
type UpstreamError struct {
	StatusCode int
	Body       string
	Detail     *ErrorDetails
}

func (e *UpstreamError) Error() string {
	if e.Detail != nil && e.Detail.Message != "" {
		return fmt.Sprintf("ads API error (status %d): %s", e.StatusCode, e.Detail.Message)
	}
	return fmt.Sprintf("ads API error (status %d)", e.StatusCode)
}
