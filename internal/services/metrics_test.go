package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fitplanhq/fitplan-backend/internal/models"
	"github.com/fitplanhq/fitplan-backend/internal/services"
)

func floatPtr(v float64) *float64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestComputeAge(t *testing.T) {
	dob := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		dob   *time.Time
		today time.Time
		want  *int
	}{
		{
			name:  "nil dob",
			dob:   nil,
			today: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			want:  nil,
		},
		{
			name:  "day before birthday",
			dob:   &dob,
			today: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
			want:  intPtr(23),
		},
		{
			name:  "on birthday",
			dob:   &dob,
			today: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			want:  intPtr(24),
		},
		{
			name:  "month before birthday",
			dob:   &dob,
			today: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			want:  intPtr(23),
		},
		{
			name:  "month after birthday",
			dob:   &dob,
			today: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			want:  intPtr(24),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ComputeAge(tt.dob, tt.today)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKG *float64
		heightM  *float64
		want     *float64
	}{
		{
			name:     "normal values",
			weightKG: floatPtr(70),
			heightM:  floatPtr(1.75),
			want:     floatPtr(22.86),
		},
		{
			name:     "nil weight",
			weightKG: nil,
			heightM:  floatPtr(1.75),
			want:     nil,
		},
		{
			name:     "nil height",
			weightKG: floatPtr(70),
			heightM:  nil,
			want:     nil,
		},
		{
			name:     "zero height",
			weightKG: floatPtr(70),
			heightM:  floatPtr(0),
			want:     nil,
		},
		{
			name:     "underweight",
			weightKG: floatPtr(50),
			heightM:  floatPtr(1.80),
			want:     floatPtr(15.43),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ComputeBMI(tt.weightKG, tt.heightM)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.InDelta(t, *tt.want, *got, 0.001)
			}
		})
	}
}

func TestMetricsService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)

	svc := services.NewMetricsService(mockReader, mockWriter)

	dob := time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		username  string
		details   *models.PersonalDetailsDB
		readerErr error
		wantErr   bool
		check     func(t *testing.T, p *services.Profile)
	}{
		{
			name:     "complete profile",
			username: "alice",
			details: &models.PersonalDetailsDB{
				Username: "alice",
				DOB:      &dob,
				WeightKG: floatPtr(70),
				HeightM:  floatPtr(1.75),
			},
			check: func(t *testing.T, p *services.Profile) {
				assert.Equal(t, "alice", p.Username)
				assert.NotNil(t, p.BMI)
				assert.InDelta(t, 22.86, *p.BMI, 0.001)
				assert.NotNil(t, p.Age)
			},
		},
		{
			name:     "no details row yet",
			username: "bob",
			details:  nil,
			check: func(t *testing.T, p *services.Profile) {
				assert.Equal(t, "bob", p.Username)
				assert.Nil(t, p.DOB)
				assert.Nil(t, p.BMI)
				assert.Nil(t, p.Age)
			},
		},
		{
			name:     "partial profile has no derived metrics",
			username: "carol",
			details: &models.PersonalDetailsDB{
				Username: "carol",
				WeightKG: floatPtr(60),
			},
			check: func(t *testing.T, p *services.Profile) {
				assert.NotNil(t, p.WeightKG)
				assert.Nil(t, p.BMI)
				assert.Nil(t, p.Age)
			},
		},
		{
			name:      "reader error",
			username:  "eve",
			readerErr: errors.New("db error"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.details, tt.readerErr)

			profile, err := svc.GetProfile(context.Background(), tt.username)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, profile)
				return
			}
			assert.NoError(t, err)
			tt.check(t, profile)
		})
	}
}

func TestMetricsService_SaveProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)

	svc := services.NewMetricsService(mockReader, mockWriter)

	dob := time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "alice", &dob, floatPtr(70), floatPtr(1.75)).
			Return(nil)

		err := svc.SaveProfile(context.Background(), "alice", &dob, floatPtr(70), floatPtr(1.75))
		assert.NoError(t, err)
	})

	t.Run("writer error", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), "bob", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("save error"))

		err := svc.SaveProfile(context.Background(), "bob", &dob, floatPtr(70), floatPtr(1.75))
		assert.EqualError(t, err, "save error")
	})
}
