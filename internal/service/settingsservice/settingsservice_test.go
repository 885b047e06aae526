package settingsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/shuttleclub/shuttleclub/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockSettingsRepo) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settingsRepo := NewMockSettingsRepo(ctrl)
	service := New(settingsRepo)
	return service, settingsRepo
}

func TestGetSettings(t *testing.T) {
	service, settingsRepo := NewMock(t)
	ctx := context.Background()

	settings := &domain.AppSettings{
		SlotBookingCost:           decimal.NewFromInt(4),
		MinBalanceForBooking:      decimal.NewFromInt(4),
		CancellationDeadlineHours: 24,
		RegistrationFee:           decimal.NewFromInt(10),
	}

	tests := []struct {
		name          string
		mockSetup     func()
		want          *domain.AppSettings
		expectedError error
	}{
		{
			name: "Successful get",
			mockSetup: func() {
				settingsRepo.EXPECT().Get(gomock.Any()).Return(settings, nil)
			},
			want:          settings,
			expectedError: nil,
		},
		{
			name: "Settings row missing",
			mockSetup: func() {
				settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
			},
			want:          nil,
			expectedError: ErrSettingsNotFound,
		},
		{
			name: "Repo error",
			mockSetup: func() {
				settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db error"))
			},
			want:          nil,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			got, err := service.GetSettings(ctx)

			if tt.expectedError != nil {
				assert.Nil(t, got)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	service, settingsRepo := NewMock(t)
	ctx := context.Background()

	valid := &domain.AppSettings{
		SlotBookingCost:           decimal.NewFromInt(5),
		MinBalanceForBooking:      decimal.NewFromInt(5),
		CancellationDeadlineHours: 48,
		RegistrationFee:           decimal.NewFromInt(15),
	}

	tests := []struct {
		name          string
		settings      *domain.AppSettings
		mockSetup     func()
		expectedError error
	}{
		{
			name:     "Successful update",
			settings: valid,
			mockSetup: func() {
				settingsRepo.EXPECT().Update(gomock.Any(), valid).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Negative booking cost",
			settings: &domain.AppSettings{
				SlotBookingCost:           decimal.NewFromInt(-1),
				MinBalanceForBooking:      decimal.NewFromInt(5),
				CancellationDeadlineHours: 48,
				RegistrationFee:           decimal.NewFromInt(15),
			},
			mockSetup:     func() {},
			expectedError: ErrInvalidSettings,
		},
		{
			name: "Negative deadline",
			settings: &domain.AppSettings{
				SlotBookingCost:           decimal.NewFromInt(5),
				MinBalanceForBooking:      decimal.NewFromInt(5),
				CancellationDeadlineHours: -1,
				RegistrationFee:           decimal.NewFromInt(15),
			},
			mockSetup:     func() {},
			expectedError: ErrInvalidSettings,
		},
		{
			name:     "Repo error",
			settings: valid,
			mockSetup: func() {
				settingsRepo.EXPECT().Update(gomock.Any(), valid).Return(errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			got, err := service.UpdateSettings(ctx, tt.settings)

			if tt.expectedError != nil {
				assert.Nil(t, got)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.settings, got)
			}
		})
	}
}
