package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/fitplanhq/fitplan-backend/internal/services"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func TestGetProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dob := time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		mockSetup    func(tok *MockTokener, svc *MockProfileProvider)
		expectedCode int
		check        func(t *testing.T, body []byte)
	}{
		{
			name: "complete profile",
			mockSetup: func(tok *MockTokener, svc *MockProfileProvider) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetUsername(gomock.Any(), "token").Return("alice", nil)
				svc.EXPECT().GetProfile(gomock.Any(), "alice").Return(&services.Profile{
					Username: "alice",
					DOB:      &dob,
					WeightKG: floatPtr(70),
					HeightM:  floatPtr(1.75),
					BMI:      floatPtr(22.86),
					Age:      intPtr(36),
				}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp ProfileResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.NotNil(t, resp.DOB)
				assert.Equal(t, "1990-03-10", *resp.DOB)
				assert.NotNil(t, resp.HeightCM)
				assert.InDelta(t, 175.0, *resp.HeightCM, 0.001)
				assert.NotNil(t, resp.BMI)
				assert.InDelta(t, 22.86, *resp.BMI, 0.001)
				assert.NotNil(t, resp.Age)
				assert.Equal(t, 36, *resp.Age)
			},
		},
		{
			name: "empty profile has null fields",
			mockSetup: func(tok *MockTokener, svc *MockProfileProvider) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetUsername(gomock.Any(), "token").Return("bob", nil)
				svc.EXPECT().GetProfile(gomock.Any(), "bob").Return(&services.Profile{Username: "bob"}, nil)
			},
			expectedCode: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var resp ProfileResponse
				assert.NoError(t, json.Unmarshal(body, &resp))
				assert.Nil(t, resp.DOB)
				assert.Nil(t, resp.WeightKG)
				assert.Nil(t, resp.HeightCM)
				assert.Nil(t, resp.BMI)
				assert.Nil(t, resp.Age)
			},
		},
		{
			name: "missing token",
			mockSetup: func(tok *MockTokener, svc *MockProfileProvider) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no header"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "internal server error",
			mockSetup: func(tok *MockTokener, svc *MockProfileProvider) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tok.EXPECT().GetUsername(gomock.Any(), "token").Return("alice", nil)
				svc.EXPECT().GetProfile(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTok := NewMockTokener(ctrl)
			mockSvc := NewMockProfileProvider(ctrl)
			tt.mockSetup(mockTok, mockSvc)

			handler := NewGetProfileHandler(mockSvc, mockTok)

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.check != nil {
				tt.check(t, rr.Body.Bytes())
			}
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authOK := func(tok *MockTokener) {
		tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		tok.EXPECT().GetUsername(gomock.Any(), "token").Return("alice", nil)
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(tok *MockTokener, svc *MockProfileSaver)
		expectedCode int
	}{
		{
			name: "success converts centimeters to meters",
			body: `{"dob":"1990-03-10","weight_kg":70,"height_cm":175}`,
			mockSetup: func(tok *MockTokener, svc *MockProfileSaver) {
				authOK(tok)
				dob := time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC)
				svc.EXPECT().
					SaveProfile(gomock.Any(), "alice", &dob, floatPtr(70), floatPtr(1.75)).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid date of birth",
			body: `{"dob":"10-03-1990","weight_kg":70,"height_cm":175}`,
			mockSetup: func(tok *MockTokener, svc *MockProfileSaver) {
				authOK(tok)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "non-positive weight",
			body: `{"dob":"1990-03-10","weight_kg":0,"height_cm":175}`,
			mockSetup: func(tok *MockTokener, svc *MockProfileSaver) {
				authOK(tok)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "non-positive height",
			body: `{"dob":"1990-03-10","weight_kg":70,"height_cm":-5}`,
			mockSetup: func(tok *MockTokener, svc *MockProfileSaver) {
				authOK(tok)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "invalid json",
			body: "{invalid json}",
			mockSetup: func(tok *MockTokener, svc *MockProfileSaver) {
				authOK(tok)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "missing token",
			body: `{"dob":"1990-03-10","weight_kg":70,"height_cm":175}`,
			mockSetup: func(tok *MockTokener, svc *MockProfileSaver) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no header"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "internal server error",
			body: `{"dob":"1990-03-10","weight_kg":70,"height_cm":175}`,
			mockSetup: func(tok *MockTokener, svc *MockProfileSaver) {
				authOK(tok)
				svc.EXPECT().
					SaveProfile(gomock.Any(), "alice", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTok := NewMockTokener(ctrl)
			mockSvc := NewMockProfileSaver(ctrl)
			tt.mockSetup(mockTok, mockSvc)

			handler := NewUpdateProfileHandler(mockSvc, mockTok)

			req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
