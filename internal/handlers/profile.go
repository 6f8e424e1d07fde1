package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/fitplanhq/fitplan-backend/internal/logger"
	"github.com/fitplanhq/fitplan-backend/internal/services"
)

// dobLayout is the wire format for dates of birth.
const dobLayout = "2006-01-02"

// ProfileTokener defines only the methods needed by these handlers.
type ProfileTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUsername(ctx context.Context, tokenString string) (string, error)
}

// ProfileProvider defines the read interface that the service must implement.
type ProfileProvider interface {
	GetProfile(ctx context.Context, username string) (*services.Profile, error)
}

// ProfileSaver defines the write interface that the service must implement.
type ProfileSaver interface {
	SaveProfile(ctx context.Context, username string, dob *time.Time, weightKG, heightM *float64) error
}

// ProfileResponse represents a user's personal details with derived metrics
// swagger:model ProfileResponse
type ProfileResponse struct {
	// Date of birth, YYYY-MM-DD
	DOB *string `json:"dob"`

	// Weight in kilograms
	WeightKG *float64 `json:"weight_kg"`

	// Height in centimeters
	HeightCM *float64 `json:"height_cm"`

	// Derived Body Mass Index; absent while the profile is incomplete
	BMI *float64 `json:"bmi"`

	// Derived age in whole years; absent while the profile is incomplete
	Age *int `json:"age"`
}

// UpdateProfileRequest represents the JSON body for updating personal details
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Date of birth, YYYY-MM-DD
	// required: true
	// default: 2000-06-15
	DOB string `json:"dob"`

	// Weight in kilograms
	// required: true
	// default: 70.0
	WeightKG float64 `json:"weight_kg"`

	// Height in centimeters
	// required: true
	// default: 175.0
	HeightCM float64 `json:"height_cm"`
}

// UpdateProfileResponse represents a successful profile update response
// swagger:model UpdateProfileResponse
type UpdateProfileResponse struct {
	// Success message
	// default: Profile updated successfully
	Message string `json:"message"`
}

// ProfileErrorResponse represents an error response for profile operations
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Invalid date of birth, weight or height
	Error string `json:"error"`
}

// NewGetProfileHandler returns an HTTP handler for fetching the user's profile.
// @Summary Get personal details
// @Description Returns stored personal details plus derived BMI and age. Derived fields are null until date of birth, weight and height are all set.
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Personal details"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ProfileErrorResponse "Internal server error"
// @Router /profile [get]
// @Security BearerAuth
func NewGetProfileHandler(
	svc ProfileProvider,
	tokenGetter ProfileTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		username, err := tokenGetter.GetUsername(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get username from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		profile, err := svc.GetProfile(ctx, username)
		if err != nil {
			logger.Log.Errorw("failed to get profile", "username", username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		resp := ProfileResponse{
			WeightKG: profile.WeightKG,
			BMI:      profile.BMI,
			Age:      profile.Age,
		}
		if profile.DOB != nil {
			dob := profile.DOB.Format(dobLayout)
			resp.DOB = &dob
		}
		if profile.HeightM != nil {
			heightCM := *profile.HeightM * 100
			resp.HeightCM = &heightCM
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for updating personal details.
// @Summary Update personal details
// @Description Stores date of birth, weight and height. Height arrives in centimeters and is stored in meters.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} handlers.UpdateProfileResponse "Profile updated"
// @Failure 400 {object} handlers.ProfileErrorResponse "Invalid date of birth, weight or height"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Router /profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(
	svc ProfileSaver,
	tokenGetter ProfileTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		username, err := tokenGetter.GetUsername(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get username from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Unauthorized"})
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode profile request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Invalid request body"})
			return
		}

		dob, err := time.Parse(dobLayout, req.DOB)
		if err != nil || req.WeightKG <= 0 || req.HeightCM <= 0 {
			logger.Log.Warnw("invalid profile fields", "dob", req.DOB, "weight_kg", req.WeightKG, "height_cm", req.HeightCM)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Invalid date of birth, weight or height"})
			return
		}

		heightM := req.HeightCM / 100
		weightKG := req.WeightKG

		if err := svc.SaveProfile(ctx, username, &dob, &weightKG, &heightM); err != nil {
			logger.Log.Errorw("failed to save profile", "username", username, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateProfileResponse{
			Message: "Profile updated successfully",
		})
	}
}
