package summarizing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-api/pkg/utils"
)

// ErrIntegrationUnavailable indica que a integração de geração de texto não
// está configurada. O serviço sobe sem ela; só este recurso fica indisponível.
var ErrIntegrationUnavailable = errors.New("integração de geração de texto não configurada")

// TextGenerator é a visão que o serviço tem do cliente de geração de texto.
type TextGenerator interface {
	GenerateText(prompt string) (string, error)
}

// Service gera o resumo mensal em texto a partir de um relatório já montado,
// respeitando a janela mínima entre gerações por conta.
type Service struct {
	cfg       *config.Config
	generator TextGenerator
	throttle  *reporting.Throttle
}

func NewService(cfg *config.Config, generator TextGenerator, throttle *reporting.Throttle) *Service {
	return &Service{
		cfg:       cfg,
		generator: generator,
		throttle:  throttle,
	}
}

// Summarize valida a janela da conta, monta o prompt e chama a API de texto.
// Geração bem sucedida registra o momento e reinicia a janela.
func (s *Service) Summarize(req *domain.SummaryRequest) (string, error) {
	if s.cfg.TextGen.APIKey == "" {
		return "", ErrIntegrationUnavailable
	}

	if req == nil || req.Account.ID == "" {
		return "", domain.ErrMissingAccountID
	}

	if err := s.throttle.Check(req.Account.ID); err != nil {
		return "", err
	}

	logrus.WithField("account_id", req.Account.ID).Debug("summary: report payload\n", utils.PrettyJson(req))

	text, err := s.generator.GenerateText(buildPrompt(req))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": req.Account.ID,
			"error":      err.Error(),
		}).Error("summary: text generation failed")
		return "", err
	}

	if err := s.throttle.Record(req.Account.ID); err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": req.Account.ID,
			"error":      err.Error(),
		}).Warn("summary: failed to record generation timestamp")
	}

	return text, nil
}

// buildPrompt monta o prompt do resumo com o total da conta e as entidades
// do breakdown, uma por linha.
func buildPrompt(req *domain.SummaryRequest) string {
	var sb strings.Builder

	accountName := req.Account.ID
	if req.Account.Name != nil {
		accountName = *req.Account.Name
	}

	sb.WriteString("Você é um analista de tráfego pago. Escreva um resumo executivo curto, ")
	sb.WriteString("em português, do desempenho mensal da conta de anúncios abaixo. ")
	sb.WriteString("Destaque investimento, receita, ROAS e as melhores e piores entidades.\n\n")

	fmt.Fprintf(&sb, "Conta: %s\nPeríodo: %s a %s\nNível: %s\n", accountName, req.Since, req.Until, req.Level)

	if req.Summary != nil {
		fmt.Fprintf(&sb, "\nTotais: investimento=%.2f, impressões=%.0f, cliques=%.0f, compras=%.0f, receita=%.2f",
			req.Summary.Spend,
			req.Summary.Impressions,
			req.Summary.Clicks,
			req.Summary.Purchases,
			req.Summary.PurchaseValue,
		)
		if req.Summary.ROAS != nil {
			fmt.Fprintf(&sb, ", roas=%.2f", *req.Summary.ROAS)
		}
		sb.WriteString("\n")
	}

	if len(req.Breakdown) > 0 {
		fmt.Fprintf(&sb, "\n%s:\n", req.Level.Title())
		for _, entity := range req.Breakdown {
			fmt.Fprintf(&sb, "- %s: investimento=%.2f, compras=%.0f, receita=%.2f",
				entity.Name, entity.Spend, entity.Purchases, entity.PurchaseValue)
			if entity.ROAS != nil {
				fmt.Fprintf(&sb, ", roas=%.2f", *entity.ROAS)
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
