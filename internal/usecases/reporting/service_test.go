package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/internal/config"
	"github.com/vfg2006/ads-report-api/internal/domain"
	"github.com/vfg2006/ads-report-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(insighter Insighter, budgets BudgetFetcher) *Service {
	cfg := &config.Config{
		Report: config.Report{BudgetWorkers: 2},
	}
	return NewService(cfg, insighter, budgets)
}

func campaignRow(id, name string, spend, purchaseValue float64) *domain.InsightRow {
	return &domain.InsightRow{
		AccountID:     "123",
		CampaignID:    id,
		CampaignName:  name,
		Spend:         spend,
		PurchaseValue: purchaseValue,
	}
}

func insightPage(level domain.Level, rows ...*domain.InsightRow) *domain.InsightPage {
	return &domain.InsightPage{
		Since: "2025-07-01",
		Until: "2025-07-31",
		Level: level,
		Count: len(rows),
		Data:  rows,
	}
}

func TestBuildReportOrdersAndTruncatesBreakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	name := "Minha Conta"
	mockInsighter.EXPECT().
		GetAccountMetadata("123").
		Return(&domain.AccountInfo{ID: "123", Name: &name}, nil)

	mockInsighter.EXPECT().
		FetchInsights("123", gomock.Any(), domain.LevelCampaign).
		Return(insightPage(
			domain.LevelCampaign,
			campaignRow("c1", "Campanha 1", 100, 300),
			campaignRow("c2", "Campanha 2", 50, 0),
			campaignRow("c3", "Campanha 3", 200, 1000),
		), nil)

	mockBudgets.EXPECT().GetEntityBudget(gomock.Any()).Return(nil, nil).AnyTimes()

	report, err := service.BuildReport("123", "2025-07", domain.LevelCampaign, 2)
	require.NoError(t, err)

	assert.Equal(t, "123", report.Account.ID)
	assert.Equal(t, "2025-07-01", report.Since)
	assert.Equal(t, "2025-07-31", report.Until)

	// Resumo cobre as três campanhas, mesmo com o breakdown truncado
	assert.Equal(t, 350.0, report.Summary.Spend)
	require.NotNil(t, report.Summary.ROAS)
	assert.InDelta(t, 1300.0/350.0, *report.Summary.ROAS, 1e-9)

	require.Len(t, report.Breakdown, 2)
	assert.Equal(t, "c3", report.Breakdown[0].ID)
	assert.Equal(t, 200.0, report.Breakdown[0].Spend)
	require.NotNil(t, report.Breakdown[0].ROAS)
	assert.Equal(t, 5.0, *report.Breakdown[0].ROAS)

	assert.Equal(t, "c1", report.Breakdown[1].ID)
}

func TestBuildReportStableSortOnSpendTies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	mockInsighter.EXPECT().
		GetAccountMetadata("123").
		Return(&domain.AccountInfo{ID: "123"}, nil)

	mockInsighter.EXPECT().
		FetchInsights("123", gomock.Any(), domain.LevelCampaign).
		Return(insightPage(
			domain.LevelCampaign,
			campaignRow("c1", "Campanha 1", 100, 0),
			campaignRow("c2", "Campanha 2", 100, 0),
			campaignRow("c3", "Campanha 3", 100, 0),
		), nil)

	mockBudgets.EXPECT().GetEntityBudget(gomock.Any()).Return(nil, nil).AnyTimes()

	report, err := service.BuildReport("123", "2025-07", domain.LevelCampaign, 0)
	require.NoError(t, err)

	// Empate no gasto preserva a ordem de chegada das campanhas
	require.Len(t, report.Breakdown, 3)
	assert.Equal(t, "c1", report.Breakdown[0].ID)
	assert.Equal(t, "c2", report.Breakdown[1].ID)
	assert.Equal(t, "c3", report.Breakdown[2].ID)
}

func TestBuildReportSpendConservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	mockInsighter.EXPECT().
		GetAccountMetadata("123").
		Return(nil, assert.AnError)

	// Duas linhas diárias da mesma campanha mais uma campanha avulsa
	mockInsighter.EXPECT().
		FetchInsights("123", gomock.Any(), domain.LevelCampaign).
		Return(insightPage(
			domain.LevelCampaign,
			campaignRow("c1", "Campanha 1", 10.5, 0),
			campaignRow("c1", "Campanha 1", 20.25, 0),
			campaignRow("c2", "Campanha 2", 5.75, 0),
		), nil)

	mockBudgets.EXPECT().GetEntityBudget(gomock.Any()).Return(nil, nil).AnyTimes()

	report, err := service.BuildReport("123", "2025-07", domain.LevelCampaign, 0)
	require.NoError(t, err)

	// Falha nos metadados degrada para o id puro
	assert.Equal(t, "123", report.Account.ID)
	assert.Nil(t, report.Account.Name)

	var breakdownSpend float64
	for _, entity := range report.Breakdown {
		breakdownSpend += entity.Spend
	}
	assert.InDelta(t, report.Summary.Spend, breakdownSpend, 1e-9)
	assert.InDelta(t, 36.5, breakdownSpend, 1e-9)

	require.Len(t, report.Breakdown, 2)
	assert.Equal(t, 30.75, report.Breakdown[0].Spend)
}

func TestBuildReportPlatformROASOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	mockInsighter.EXPECT().
		GetAccountMetadata("123").
		Return(&domain.AccountInfo{ID: "123"}, nil)

	roas1 := 4.0
	roas2 := 6.0
	row1 := campaignRow("c1", "Campanha 1", 100, 300)
	row1.PlatformROAS = &roas1
	row2 := campaignRow("c1", "Campanha 1", 100, 300)
	row2.PlatformROAS = &roas2

	mockInsighter.EXPECT().
		FetchInsights("123", gomock.Any(), domain.LevelCampaign).
		Return(insightPage(domain.LevelCampaign, row1, row2), nil)

	mockBudgets.EXPECT().GetEntityBudget("c1").Return(nil, nil)

	report, err := service.BuildReport("123", "2025-07", domain.LevelCampaign, 0)
	require.NoError(t, err)

	// Média das amostras da plataforma no lugar da razão receita/gasto
	require.Len(t, report.Breakdown, 1)
	require.NotNil(t, report.Breakdown[0].ROAS)
	assert.Equal(t, 5.0, *report.Breakdown[0].ROAS)
}

func TestBuildReportAttachesBudgetsAndSkipsSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	mockInsighter.EXPECT().
		GetAccountMetadata("123").
		Return(&domain.AccountInfo{ID: "123"}, nil)

	// A segunda linha não tem id de campanha e cai no grupo sentinela
	orphanRow := &domain.InsightRow{AccountID: "123", Spend: 10}

	mockInsighter.EXPECT().
		FetchInsights("123", gomock.Any(), domain.LevelCampaign).
		Return(insightPage(
			domain.LevelCampaign,
			campaignRow("c1", "Campanha 1", 100, 0),
			orphanRow,
		), nil)

	budget := 150.0
	mockBudgets.EXPECT().GetEntityBudget("c1").Return(&budget, nil)

	report, err := service.BuildReport("123", "2025-07", domain.LevelCampaign, 0)
	require.NoError(t, err)

	require.Len(t, report.Breakdown, 2)
	require.NotNil(t, report.Breakdown[0].Budget)
	assert.Equal(t, 150.0, *report.Breakdown[0].Budget)

	assert.Equal(t, "unknown_campaign", report.Breakdown[1].ID)
	assert.Equal(t, "Unknown Campaign", report.Breakdown[1].Name)
	assert.Nil(t, report.Breakdown[1].Budget)
}

func TestBuildReportSkipsBudgetsAtAccountLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	mockInsighter.EXPECT().
		GetAccountMetadata("123").
		Return(&domain.AccountInfo{ID: "123"}, nil)

	row := &domain.InsightRow{AccountID: "123", AccountName: "Minha Conta", Spend: 42}
	mockInsighter.EXPECT().
		FetchInsights("123", gomock.Any(), domain.LevelAccount).
		Return(insightPage(domain.LevelAccount, row), nil)

	// Nenhuma chamada de orçamento esperada no nível de conta

	report, err := service.BuildReport("123", "2025-07", domain.LevelAccount, 0)
	require.NoError(t, err)

	require.Len(t, report.Breakdown, 1)
	assert.Equal(t, "123", report.Breakdown[0].ID)
	assert.Nil(t, report.Breakdown[0].Budget)
}

func TestBuildReportSkipsBudgetsAtAdLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	mockInsighter.EXPECT().
		GetAccountMetadata("123").
		Return(&domain.AccountInfo{ID: "123"}, nil)

	row := &domain.InsightRow{
		AccountID: "123",
		AdID:      "ad1",
		AdName:    "Anúncio 1",
		Spend:     42,
	}
	mockInsighter.EXPECT().
		FetchInsights("123", gomock.Any(), domain.LevelAd).
		Return(insightPage(domain.LevelAd, row), nil)

	// Anúncios não têm orçamento próprio: nenhuma chamada esperada

	report, err := service.BuildReport("123", "2025-07", domain.LevelAd, 0)
	require.NoError(t, err)

	require.Len(t, report.Breakdown, 1)
	assert.Equal(t, "ad1", report.Breakdown[0].ID)
	assert.Nil(t, report.Breakdown[0].Budget)
}

func TestBuildReportInvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	_, err := service.BuildReport("123", "07/2025", domain.LevelCampaign, 0)
	assert.Error(t, err)
}

func TestBuildReportPropagatesFetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	mockInsighter.EXPECT().
		GetAccountMetadata("123").
		Return(&domain.AccountInfo{ID: "123"}, nil)

	mockInsighter.EXPECT().
		FetchInsights("123", gomock.Any(), domain.LevelCampaign).
		Return(nil, assert.AnError)

	_, err := service.BuildReport("123", "2025-07", domain.LevelCampaign, 0)
	assert.Error(t, err)
}

func TestBuildReportIdempotentForSameInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	rows := []*domain.InsightRow{
		campaignRow("c1", "Campanha 1", 100, 300),
		campaignRow("c2", "Campanha 2", 200, 500),
	}

	mockInsighter.EXPECT().
		GetAccountMetadata("123").
		Return(&domain.AccountInfo{ID: "123"}, nil).
		Times(2)

	mockInsighter.EXPECT().
		FetchInsights("123", gomock.Any(), domain.LevelCampaign).
		Return(insightPage(domain.LevelCampaign, rows...), nil).
		Times(2)

	mockBudgets.EXPECT().GetEntityBudget(gomock.Any()).Return(nil, nil).AnyTimes()

	first, err := service.BuildReport("123", "2025-07", domain.LevelCampaign, 0)
	require.NoError(t, err)

	second, err := service.BuildReport("123", "2025-07", domain.LevelCampaign, 0)
	require.NoError(t, err)

	assert.Equal(t, first.Summary, second.Summary)
	require.Equal(t, len(first.Breakdown), len(second.Breakdown))
	for i := range first.Breakdown {
		assert.Equal(t, first.Breakdown[i].ID, second.Breakdown[i].ID)
		assert.Equal(t, first.Breakdown[i].Spend, second.Breakdown[i].Spend)
	}
}

func TestMonthlyInsightsResolvesWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsighter := mocks.NewMockInsighter(ctrl)
	mockBudgets := mocks.NewMockBudgetFetcher(ctrl)
	service := newTestService(mockInsighter, mockBudgets)

	mockInsighter.EXPECT().
		FetchInsights("123", gomock.Any(), domain.LevelAd).
		DoAndReturn(func(accountID string, filters domain.InsightFilters, level domain.Level) (*domain.InsightPage, error) {
			assert.Equal(t, time.July, filters.Since.Month())
			assert.Equal(t, 1, filters.Since.Day())
			assert.Equal(t, 31, filters.Until.Day())
			return insightPage(domain.LevelAd), nil
		})

	page, err := service.MonthlyInsights("123", "2025-07", domain.LevelAd)
	require.NoError(t, err)
	assert.Equal(t, 0, page.Count)
}
