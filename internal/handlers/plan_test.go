package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fitplanhq/fitplan-backend/internal/models"
	"github.com/fitplanhq/fitplan-backend/internal/services"
)

func TestGetPlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	plan := &models.ExercisePlanDB{
		Username: "alice",
		Day:      3,
		Pushups:  13, Situps: 19, Squats: 26,
		PushupsCompleted: 10,
		Completion:       25.64,
	}

	tests := []struct {
		name         string
		mockSetup    func(tok *MockTokener, svc *MockTodayPlanProvider)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "success",
			mockSetup: func(tok *MockTokener, svc *MockTodayPlanProvider) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetUsername(gomock.Any(), "token").Return("alice", nil)
				svc.EXPECT().GetTodayPlan(gomock.Any(), "alice").Return(plan, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp PlanResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.False(t, resp.ProfileIncomplete)
				assert.NotNil(t, resp.Plan)
				assert.Equal(t, 3, resp.Plan.Day)
				assert.Equal(t, 13, resp.Plan.Pushups)
				assert.Equal(t, 10, resp.Plan.PushupsCompleted)
				assert.InDelta(t, 25.64, resp.Plan.Completion, 0.001)
			},
		},
		{
			name: "profile incomplete",
			mockSetup: func(tok *MockTokener, svc *MockTodayPlanProvider) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetUsername(gomock.Any(), "token").Return("alice", nil)
				svc.EXPECT().GetTodayPlan(gomock.Any(), "alice").Return(nil, services.ErrProfileIncomplete)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp PlanResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.True(t, resp.ProfileIncomplete)
				assert.NotEmpty(t, resp.Message)
				assert.Nil(t, resp.Plan)
			},
		},
		{
			name: "missing token",
			mockSetup: func(tok *MockTokener, svc *MockTodayPlanProvider) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no header"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			mockSetup: func(tok *MockTokener, svc *MockTodayPlanProvider) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad", nil)
				tok.EXPECT().GetUsername(gomock.Any(), "bad").Return("", errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "internal server error",
			mockSetup: func(tok *MockTokener, svc *MockTodayPlanProvider) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetUsername(gomock.Any(), "token").Return("alice", nil)
				svc.EXPECT().GetTodayPlan(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTok := NewMockTokener(ctrl)
			mockSvc := NewMockTodayPlanProvider(ctrl)
			tt.mockSetup(mockTok, mockSvc)

			handler := NewGetPlanHandler(mockSvc, mockTok)

			req := httptest.NewRequest(http.MethodGet, "/plan", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				tt.check(t, rr.Body.Bytes())
			}
		})
	}
}
