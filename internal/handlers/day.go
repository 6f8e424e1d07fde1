package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fitplanhq/fitplan-backend/internal/logger"
)

// DayTokener defines only the methods needed by this handler.
type DayTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUsername(ctx context.Context, tokenString string) (string, error)
}

// DayAdvancer defines the interface that the service must implement.
type DayAdvancer interface {
	AdvanceDay(ctx context.Context, username string) (int, error)
}

// AdvanceDayResponse represents a successful day advance response
// swagger:model AdvanceDayResponse
type AdvanceDayResponse struct {
	// Success message
	// default: Advanced to next day
	Message string `json:"message"`

	// The new current day
	// default: 2
	Day int `json:"day"`
}

// AdvanceDayErrorResponse represents an error response for day advancing
// swagger:model AdvanceDayErrorResponse
type AdvanceDayErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewAdvanceDayHandler returns an HTTP handler for advancing the plan day.
// @Summary Advance to the next plan day
// @Description Increments the user's day counter. The next day's plan is generated lazily on first request; no completion check is applied.
// @Tags plan
// @Produce json
// @Success 200 {object} handlers.AdvanceDayResponse "Advanced to next day"
// @Failure 401 {object} handlers.AdvanceDayErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.AdvanceDayErrorResponse "Internal server error"
// @Router /day/advance [post]
// @Security BearerAuth
func NewAdvanceDayHandler(
	svc DayAdvancer,
	tokenGetter DayTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AdvanceDayErrorResponse{Error: "Unauthorized"})
			return
		}

		username, err := tokenGetter.GetUsername(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get username from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AdvanceDayErrorResponse{Error: "Unauthorized"})
			return
		}

		day, err := svc.AdvanceDay(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to advance day", "username", username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdvanceDayErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdvanceDayResponse{
			Message: "Advanced to next day",
			Day:     day,
		})
	}
}
