package summarizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateText(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func testConfig(apiKey string) *config.Config {
	return &config.Config{
		TextGen: config.TextGen{APIKey: apiKey, Model: "gpt-4o-mini"},
	}
}

func summaryRequest() *domain.SummaryRequest {
	name := "Minha Conta"
	roas := 3.7
	return &domain.SummaryRequest{
		Account: domain.AccountInfo{ID: "123", Name: &name},
		Since:   "2025-07-01",
		Until:   "2025-07-31",
		Level:   domain.LevelCampaign,
		Summary: &domain.ReportSummary{
			Spend:         350,
			PurchaseValue: 1300,
			ROAS:          &roas,
		},
		Breakdown: []*domain.EntityAggregate{
			{ID: "c3", Name: "Campanha 3", ReportSummary: domain.ReportSummary{Spend: 200, PurchaseValue: 1000}},
		},
	}
}

func TestSummarizeGeneratesAndRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockReportLogRepository(ctrl)
	mockRepo.EXPECT().GetLastGeneratedAt("123").Return(nil, nil)
	mockRepo.EXPECT().SaveGeneratedAt("123", gomock.Any()).Return(nil)

	generator := &fakeGenerator{text: "Resumo do mês."}
	service := NewService(testConfig("sk-test"), generator, reporting.NewThrottle(mockRepo, 30))

	text, err := service.Summarize(summaryRequest())
	require.NoError(t, err)
	assert.Equal(t, "Resumo do mês.", text)

	require.Len(t, generator.prompts, 1)
	assert.Contains(t, generator.prompts[0], "Minha Conta")
	assert.Contains(t, generator.prompts[0], "2025-07-01")
	assert.Contains(t, generator.prompts[0], "Campanha 3")
}

func TestSummarizeWithoutAPIKey(t *testing.T) {
	service := NewService(testConfig(""), &fakeGenerator{}, nil)

	_, err := service.Summarize(summaryRequest())
	assert.ErrorIs(t, err, ErrIntegrationUnavailable)
}

func TestSummarizeThrottled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	last := time.Now().AddDate(0, 0, -10)
	mockRepo := mocks.NewMockReportLogRepository(ctrl)
	mockRepo.EXPECT().GetLastGeneratedAt("123").Return(&last, nil)

	generator := &fakeGenerator{text: "não deve ser chamado"}
	service := NewService(testConfig("sk-test"), generator, reporting.NewThrottle(mockRepo, 30))

	_, err := service.Summarize(summaryRequest())
	require.Error(t, err)

	throttled, ok := err.(*reporting.ThrottledError)
	require.True(t, ok)
	assert.Equal(t, 20, throttled.DaysRemaining)
	assert.Empty(t, generator.prompts)
}

func TestSummarizeMissingAccountID(t *testing.T) {
	service := NewService(testConfig("sk-test"), &fakeGenerator{}, nil)

	req := summaryRequest()
	req.Account.ID = ""

	_, err := service.Summarize(req)
	assert.ErrorIs(t, err, domain.ErrMissingAccountID)
}

func TestSummarizeGenerationFailureDoesNotRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockReportLogRepository(ctrl)
	mockRepo.EXPECT().GetLastGeneratedAt("123").Return(nil, nil)
	// Nenhum SaveGeneratedAt esperado quando a geração falha

	generator := &fakeGenerator{err: assert.AnError}
	service := NewService(testConfig("sk-test"), generator, reporting.NewThrottle(mockRepo, 30))

	_, err := service.Summarize(summaryRequest())
	assert.Error(t, err)
}
