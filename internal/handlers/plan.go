package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitplanhq/fitplan-backend/internal/logger"
	"github.com/fitplanhq/fitplan-backend/internal/models"
	"github.com/fitplanhq/fitplan-backend/internal/services"
)

// PlanTokener defines only the methods needed by this handler.
type PlanTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUsername(ctx context.Context, tokenString string) (string, error)
}

// TodayPlanProvider defines the interface that the service must implement.
type TodayPlanProvider interface {
	GetTodayPlan(ctx context.Context, username string) (*models.ExercisePlanDB, error)
}

// PlanData represents one day's exercise plan
// swagger:model PlanData
type PlanData struct {
	// Plan day
	// default: 1
	Day int `json:"day"`

	// Target push-up reps
	// default: 10
	Pushups int `json:"pushups"`

	// Target sit-up reps
	// default: 15
	Situps int `json:"situps"`

	// Target squat reps
	// default: 20
	Squats int `json:"squats"`

	// Completed push-up reps
	// default: 0
	PushupsCompleted int `json:"pushups_completed"`

	// Completed sit-up reps
	// default: 0
	SitupsCompleted int `json:"situps_completed"`

	// Completed squat reps
	// default: 0
	SquatsCompleted int `json:"squats_completed"`

	// Completion percentage averaged over the three exercises
	// default: 0
	Completion float64 `json:"completion"`
}

// PlanResponse represents the response for today's plan
// swagger:model PlanResponse
type PlanResponse struct {
	// Set when the profile is incomplete and no plan can be generated
	// default: false
	ProfileIncomplete bool `json:"profile_incomplete,omitempty"`

	// Human-readable note for the incomplete-profile case
	Message string `json:"message,omitempty"`

	// Today's plan; absent when profile_incomplete is set
	Plan *PlanData `json:"plan,omitempty"`
}

// PlanErrorResponse represents an error response for plan retrieval
// swagger:model PlanErrorResponse
type PlanErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

func newPlanData(plan *models.ExercisePlanDB) *PlanData {
	return &PlanData{
		Day:              plan.Day,
		Pushups:          plan.Pushups,
		Situps:           plan.Situps,
		Squats:           plan.Squats,
		PushupsCompleted: plan.PushupsCompleted,
		SitupsCompleted:  plan.SitupsCompleted,
		SquatsCompleted:  plan.SquatsCompleted,
		Completion:       plan.Completion,
	}
}

// NewGetPlanHandler returns an HTTP handler for fetching today's exercise plan.
// @Summary Get today's exercise plan
// @Description Returns the plan for the user's current day, generating it from BMI and age on first request. Responds with a profile-incomplete marker until date of birth, weight and height are set.
// @Tags plan
// @Produce json
// @Success 200 {object} handlers.PlanResponse "Today's plan or profile-incomplete marker"
// @Failure 401 {object} handlers.PlanErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.PlanErrorResponse "Internal server error"
// @Router /plan [get]
// @Security BearerAuth
func NewGetPlanHandler(
	svc TodayPlanProvider,
	tokenGetter PlanTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PlanErrorResponse{Error: "Unauthorized"})
			return
		}

		username, err := tokenGetter.GetUsername(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get username from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(PlanErrorResponse{Error: "Unauthorized"})
			return
		}

		plan, err := svc.GetTodayPlan(ctx, username)
		if err != nil {
			if errors.Is(err, services.ErrProfileIncomplete) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(PlanResponse{
					ProfileIncomplete: true,
					Message:           "Please complete your profile (date of birth, height, weight) to generate an exercise plan",
				})
				return
			}
			logger.Log.Errorw("failed to get today's plan", "username", username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PlanErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PlanResponse{
			Plan: newPlanData(plan),
		})
	}
}
