package textgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-report-api/internal/config"
)

// Client gera texto a partir de um prompt usando uma API compatível com o
// formato chat/completions.
type Client interface {
	GenerateText(prompt string) (string, error)
}

type TextGenClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &TextGenClient{Cfg: cfg}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *TextGenClient) GenerateText(prompt string) (string, error) {
	payload := chatRequest{
		Model: c.Cfg.TextGen.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "erro ao serializar a requisição de geração de texto")
	}

	url := fmt.Sprintf("%s/chat/completions", c.Cfg.TextGen.BaseURL)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição de geração de texto")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Cfg.TextGen.APIKey))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "erro ao chamar a API de geração de texto")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler a resposta da API de geração de texto")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errors.Errorf("API de geração de texto retornou status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", errors.Wrap(err, "erro ao deserializar a resposta da API de geração de texto")
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("API de geração de texto não retornou nenhuma escolha")
	}

	return parsed.Choices[0].Message.Content, nil
}
