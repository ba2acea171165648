package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestThrottleCheck(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		lastGenerated *time.Time
		wantErr       bool
		wantDays      int
	}{
		{
			name:          "Conta sem registro passa direto",
			lastGenerated: nil,
			wantErr:       false,
		},
		{
			name:          "Geração de 29 dias atrás ainda bloqueada por 1 dia",
			lastGenerated: timePtr(now.AddDate(0, 0, -29)),
			wantErr:       true,
			wantDays:      1,
		},
		{
			name:          "Geração de exatamente 30 dias atrás liberada",
			lastGenerated: timePtr(now.AddDate(0, 0, -30)),
			wantErr:       false,
		},
		{
			name:          "Geração de ontem bloqueada por 29 dias",
			lastGenerated: timePtr(now.AddDate(0, 0, -1)),
			wantErr:       true,
			wantDays:      29,
		},
		{
			name:          "Geração de agora bloqueada pela janela inteira",
			lastGenerated: timePtr(now),
			wantErr:       true,
			wantDays:      30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockReportLogRepository(ctrl)
			mockRepo.EXPECT().
				GetLastGeneratedAt("123").
				Return(tt.lastGenerated, nil)

			throttle := NewThrottle(mockRepo, 30)
			throttle.now = func() time.Time { return now }

			err := throttle.Check("123")

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			throttled, ok := err.(*ThrottledError)
			require.True(t, ok)
			assert.Equal(t, tt.wantDays, throttled.DaysRemaining)
		})
	}
}

func TestThrottledErrorMessage(t *testing.T) {
	err := &ThrottledError{DaysRemaining: 1}
	assert.Equal(t, "Try again in 1 day(s)", err.Error())

	err = &ThrottledError{DaysRemaining: 12}
	assert.Equal(t, "Try again in 12 day(s)", err.Error())
}

func TestThrottleCheckRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockReportLogRepository(ctrl)
	mockRepo.EXPECT().
		GetLastGeneratedAt("123").
		Return(nil, assert.AnError)

	throttle := NewThrottle(mockRepo, 30)

	err := throttle.Check("123")
	require.Error(t, err)

	_, ok := err.(*ThrottledError)
	assert.False(t, ok)
}

func TestThrottleRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	mockRepo := mocks.NewMockReportLogRepository(ctrl)
	mockRepo.EXPECT().
		SaveGeneratedAt("123", now).
		Return(nil)

	throttle := NewThrottle(mockRepo, 30)
	throttle.now = func() time.Time { return now }

	assert.NoError(t, throttle.Record("123"))
}

func timePtr(t time.Time) *time.Time {
	return &t
}
