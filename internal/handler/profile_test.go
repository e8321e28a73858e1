package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/leaguemind/LeagueMind_Go/internal/domain"
	"github.com/leaguemind/LeagueMind_Go/internal/profile"
)

// MockProfileService mocks the profile.Service interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string, sport domain.Sport) (*domain.UserIntelligenceProfile, error) {
	args := m.Called(ctx, userID, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserIntelligenceProfile), args.Error(1)
}

func (m *MockProfileService) RegenerateProfile(ctx context.Context, userID string, sport domain.Sport) (*domain.UserIntelligenceProfile, error) {
	args := m.Called(ctx, userID, sport)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserIntelligenceProfile), args.Error(1)
}

func (m *MockProfileService) Invalidate(ctx context.Context, userID string, sport domain.Sport) {
	m.Called(ctx, userID, sport)
}

func (m *MockProfileService) State(userID string, sport domain.Sport) profile.EntryState {
	args := m.Called(userID, sport)
	return args.Get(0).(profile.EntryState)
}

func TestHandleGetProfile(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockProfileService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing user_id",
			query:          "?sport=nfl",
			setupMock:      func(m *MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "user_id",
		},
		{
			name:           "Invalid sport",
			query:          "?user_id=u1&sport=cricket",
			setupMock:      func(m *MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidSportError,
		},
		{
			name:  "Event store down",
			query: "?user_id=u1&sport=nfl",
			setupMock: func(m *MockProfileService) {
				m.On("GetProfile", mock.Anything, "u1", domain.SportNFL).
					Return(nil, domain.ErrUpstreamUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgUpstreamError,
		},
		{
			name:  "Stale profile rides a failed rebuild",
			query: "?user_id=u1&sport=nfl",
			setupMock: func(m *MockProfileService) {
				stale := &domain.UserIntelligenceProfile{UserID: "u1", Sport: domain.SportNFL}
				m.On("GetProfile", mock.Anything, "u1", domain.SportNFL).
					Return(stale, errors.New("profile rebuild failed: store down"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"stale":true`,
		},
		{
			name:  "Success",
			query: "?user_id=u1&sport=NFL",
			setupMock: func(m *MockProfileService) {
				p := &domain.UserIntelligenceProfile{
					UserID:         "u1",
					Sport:          domain.SportNFL,
					DataConfidence: domain.ConfidenceHigh,
				}
				m.On("GetProfile", mock.Anything, "u1", domain.SportNFL).Return(p, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"data_confidence":"HIGH"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockProfileService)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/profile"+tt.query, nil)
			rec := httptest.NewRecorder()

			HandleGetProfile(svc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleRegenerateProfile(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockProfileService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			requestBody:    "not json",
			setupMock:      func(m *MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Unknown sport fails validation",
			requestBody:    RegenerateProfileRequest{UserID: "u1", Sport: "cricket"},
			setupMock:      func(m *MockProfileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:        "Rebuild failure with nothing cached",
			requestBody: RegenerateProfileRequest{UserID: "u1", Sport: "nfl"},
			setupMock: func(m *MockProfileService) {
				m.On("RegenerateProfile", mock.Anything, "u1", domain.SportNFL).
					Return(nil, domain.ErrUpstreamUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ErrMsgUpstreamError,
		},
		{
			name:        "Success",
			requestBody: RegenerateProfileRequest{UserID: "u1", Sport: "NFL"},
			setupMock: func(m *MockProfileService) {
				p := &domain.UserIntelligenceProfile{UserID: "u1", Sport: domain.SportNFL}
				m.On("RegenerateProfile", mock.Anything, "u1", domain.SportNFL).Return(p, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"user_id":"u1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockProfileService)
			tt.setupMock(svc)

			var body bytes.Buffer
			if s, ok := tt.requestBody.(string); ok {
				body.WriteString(s)
			} else {
				assert.NoError(t, json.NewEncoder(&body).Encode(tt.requestBody))
			}

			req := httptest.NewRequest(http.MethodPost, "/profile/regenerate", &body)
			rec := httptest.NewRecorder()

			HandleRegenerateProfile(svc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleInvalidateProfile(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockProfileService)
		svc.On("Invalidate", mock.Anything, "u1", domain.SportNBA).Return()

		var body bytes.Buffer
		assert.NoError(t, json.NewEncoder(&body).Encode(InvalidateProfileRequest{UserID: "u1", Sport: "nba"}))

		req := httptest.NewRequest(http.MethodPost, "/profile/invalidate", &body)
		rec := httptest.NewRecorder()

		HandleInvalidateProfile(svc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgProfileInvalidatedSuccess)
		svc.AssertExpectations(t)
	})

	t.Run("Missing user_id fails validation", func(t *testing.T) {
		svc := new(MockProfileService)

		var body bytes.Buffer
		assert.NoError(t, json.NewEncoder(&body).Encode(InvalidateProfileRequest{Sport: "nba"}))

		req := httptest.NewRequest(http.MethodPost, "/profile/invalidate", &body)
		rec := httptest.NewRecorder()

		HandleInvalidateProfile(svc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertExpectations(t)
	})
}
