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

// ExerciseTokener defines only the methods needed by this handler.
type ExerciseTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUsername(ctx context.Context, tokenString string) (string, error)
}

// ExerciseUpdater defines the interface that the service must implement.
type ExerciseUpdater interface {
	UpdateExercise(ctx context.Context, username, exerciseKind string, completedReps int) (*models.ExercisePlanDB, error)
}

// UpdateExerciseRequest represents the JSON body for reporting completed reps
// swagger:model UpdateExerciseRequest
type UpdateExerciseRequest struct {
	// Exercise kind, one of pushups, situps, squats
	// required: true
	// default: pushups
	ExerciseType string `json:"exercise_type"`

	// Completed rep count
	// required: true
	// default: 10
	CompletedReps int `json:"completed_reps"`
}

// UpdateExerciseResponse represents a successful progress update response
// swagger:model UpdateExerciseResponse
type UpdateExerciseResponse struct {
	// Success message
	// default: Progress recorded
	Message string `json:"message"`

	// Plan after the update, with the recomputed completion percentage
	Plan *PlanData `json:"plan"`
}

// UpdateExerciseErrorResponse represents an error response for progress updates
// swagger:model UpdateExerciseErrorResponse
type UpdateExerciseErrorResponse struct {
	// Error message
	// default: Invalid exercise type or rep count
	Error string `json:"error"`
}

// NewUpdateExerciseHandler returns an HTTP handler for reporting completed reps.
// @Summary Report completed reps
// @Description Sets the completed rep count for one exercise on the current day and recomputes the completion percentage atomically.
// @Tags plan
// @Accept json
// @Produce json
// @Param request body handlers.UpdateExerciseRequest true "Progress update request"
// @Success 200 {object} handlers.UpdateExerciseResponse "Progress recorded"
// @Failure 400 {object} handlers.UpdateExerciseErrorResponse "Invalid exercise type or rep count"
// @Failure 401 {object} handlers.UpdateExerciseErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.UpdateExerciseErrorResponse "No plan for the current day"
// @Router /exercise [post]
// @Security BearerAuth
func NewUpdateExerciseHandler(
	svc ExerciseUpdater,
	tokenGetter ExerciseTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateExerciseErrorResponse{Error: "Unauthorized"})
			return
		}

		username, err := tokenGetter.GetUsername(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get username from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UpdateExerciseErrorResponse{Error: "Unauthorized"})
			return
		}

		var req UpdateExerciseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode update exercise request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateExerciseErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.CompletedReps < 0 {
			logger.Log.Warnw("invalid completed reps", "completed_reps", req.CompletedReps)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateExerciseErrorResponse{Error: "Invalid exercise type or rep count"})
			return
		}

		plan, err := svc.UpdateExercise(ctx, username, req.ExerciseType, req.CompletedReps)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidExerciseKind):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateExerciseErrorResponse{Error: "Invalid exercise type or rep count"})
			case errors.Is(err, services.ErrPlanNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateExerciseErrorResponse{Error: "No exercise plan for the current day"})
			default:
				logger.Log.Errorw("failed to update exercise", "username", username, "exercise", req.ExerciseType, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateExerciseErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateExerciseResponse{
			Message: "Progress recorded",
			Plan:    newPlanData(plan),
		})
	}
}
