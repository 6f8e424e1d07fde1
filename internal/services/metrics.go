package services

import (
	"context"
	"math"
	"time"

	"github.com/fitplanhq/fitplan-backend/internal/logger"
	"github.com/fitplanhq/fitplan-backend/internal/models"
)

// ComputeAge returns whole years elapsed between dob and today,
// decremented by one when today's (month, day) precedes the birthday.
// Returns nil when the date of birth is unknown.
func ComputeAge(dob *time.Time, today time.Time) *int {
	if dob == nil {
		return nil
	}

	years := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		years--
	}

	return &years
}

// ComputeBMI returns weight / height² rounded to two decimals.
// Returns nil when either input is unknown or height is not positive;
// an incomplete profile is a signaled condition, not an error.
func ComputeBMI(weightKG, heightM *float64) *float64 {
	if weightKG == nil || heightM == nil || *heightM <= 0 {
		return nil
	}

	bmi := *weightKG / (*heightM * *heightM)
	bmi = math.Round(bmi*100) / 100
	return &bmi
}

// ProfileReader defines read operations for personal details.
type ProfileReader interface {
	GetByUsername(ctx context.Context, username string) (*models.PersonalDetailsDB, error)
}

// ProfileWriter defines write operations for personal details.
type ProfileWriter interface {
	Save(ctx context.Context, username string, dob *time.Time, weightKG, heightM *float64) error
}

// Profile carries stored personal details plus the derived metrics.
// BMI and Age are nil while the profile is incomplete.
type Profile struct {
	Username string
	DOB      *time.Time
	WeightKG *float64
	HeightM  *float64
	BMI      *float64
	Age      *int
}

// MetricsService reads and writes personal details and derives
// BMI and age from them.
type MetricsService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewMetricsService creates a new MetricsService instance.
func NewMetricsService(reader ProfileReader, writer ProfileWriter) *MetricsService {
	return &MetricsService{
		reader: reader,
		writer: writer,
	}
}

// GetProfile returns the user's personal details with derived metrics.
func (svc *MetricsService) GetProfile(ctx context.Context, username string) (*Profile, error) {
	details, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get personal details", "username", username, "error", err)
		return nil, err
	}

	profile := &Profile{Username: username}
	if details != nil {
		profile.DOB = details.DOB
		profile.WeightKG = details.WeightKG
		profile.HeightM = details.HeightM
		profile.BMI = ComputeBMI(details.WeightKG, details.HeightM)
		profile.Age = ComputeAge(details.DOB, time.Now())
	}

	return profile, nil
}

// SaveProfile stores the user's date of birth, weight and height.
// Height arrives in meters; the handler converts from centimeters.
func (svc *MetricsService) SaveProfile(ctx context.Context, username string, dob *time.Time, weightKG, heightM *float64) error {
	if err := svc.writer.Save(ctx, username, dob, weightKG, heightM); err != nil {
		logger.Log.Errorw("failed to save personal details", "username", username, "error", err)
		return err
	}
	return nil
}
