package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/fitplanhq/fitplan-backend/internal/logger"
	"github.com/fitplanhq/fitplan-backend/internal/models"
	"github.com/fitplanhq/fitplan-backend/internal/repositories"
)

var (
	// ErrProfileIncomplete signals that BMI or age cannot be derived yet.
	// Plan generation is deferred until the profile is filled in; this is
	// an expected outcome, not a failure.
	ErrProfileIncomplete = errors.New("profile incomplete: date of birth, weight and height are required")

	// ErrPlanNotFound is returned when reporting progress for a day that
	// has no plan yet.
	ErrPlanNotFound = errors.New("no exercise plan for the current day")

	// ErrInvalidExerciseKind rejects exercise names outside the allow-list.
	ErrInvalidExerciseKind = errors.New("unknown exercise kind")
)

// Base rep counts per exercise, scaled by BMI, age and day.
var baseReps = map[models.Exercise]int{
	models.Pushups: 10,
	models.Situps:  15,
	models.Squats:  20,
}

// dailyIncrement grows every target by 5% per plan day.
const dailyIncrement = 0.05

// GenerateTargets computes the target rep counts for one day.
// Deterministic and side-effect free: identical inputs always produce
// identical targets, so a plan can be regenerated bit-for-bit.
//
// The factor ladders intentionally mirror the product rules, gaps
// included: BMI in [18.5, 25) and BMI >= 30 both fall through to 1.4,
// and ages under 30 or 50 and over share the 0.8 factor.
func GenerateTargets(bmi float64, day, age int) map[models.Exercise]int {
	bmiFactor := 1.4
	switch {
	case bmi < 18.5:
		bmiFactor = 0.8
	case bmi >= 25 && bmi < 30:
		bmiFactor = 1.2
	}

	ageFactor := 0.8
	if age >= 30 && age < 50 {
		ageFactor = 0.9
	}

	dayFactor := 1 + dailyIncrement*float64(day)

	targets := make(map[models.Exercise]int, len(baseReps))
	for exercise, base := range baseReps {
		// Truncating conversion, not rounding. The factors multiply
		// left to right starting from the base; regrouping them changes
		// the truncated result for large day numbers.
		targets[exercise] = int(float64(base) * dayFactor * bmiFactor * ageFactor)
	}
	return targets
}

// DayReader reads the per-user day counter.
type DayReader interface {
	GetCurrentDay(ctx context.Context, username string) (int, error)
}

// DayWriter advances the per-user day counter.
type DayWriter interface {
	Advance(ctx context.Context, username string) (int, error)
}

// PlanReader fetches stored exercise plans.
type PlanReader interface {
	GetByUsernameAndDay(ctx context.Context, username string, day int) (*models.ExercisePlanDB, error)
}

// PlanWriter creates plans and records completed reps.
type PlanWriter interface {
	Create(ctx context.Context, username string, day int, targets map[models.Exercise]int) error
	RecordCompletion(ctx context.Context, username string, day int, exercise models.Exercise, reps int) (*models.ExercisePlanDB, error)
}

// PlanCache caches the current day's plan.
type PlanCache interface {
	Get(ctx context.Context, username string, day int) (*models.ExercisePlanDB, error)
	Set(ctx context.Context, plan *models.ExercisePlanDB) error
	Invalidate(ctx context.Context, username string, day int) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PlanService generates, fetches and mutates daily exercise plans.
type PlanService struct {
	days        DayReader
	dayWriter   DayWriter
	profiles    ProfileReader
	planReader  PlanReader
	planWriter  PlanWriter
	cache       PlanCache
	kafkaWriter KafkaWriter
}

// NewPlanService creates a new PlanService.
func NewPlanService(
	days DayReader,
	dayWriter DayWriter,
	profiles ProfileReader,
	planReader PlanReader,
	planWriter PlanWriter,
	cache PlanCache,
	kafkaWriter KafkaWriter,
) *PlanService {
	return &PlanService{
		days:        days,
		dayWriter:   dayWriter,
		profiles:    profiles,
		planReader:  planReader,
		planWriter:  planWriter,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// publishProgress publishes a progress event to Kafka, best effort.
func (s *PlanService) publishProgress(ctx context.Context, event models.ProgressEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal progress event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Username),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish progress event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Progress event published to Kafka", "event_id", event.EventID, "event", event.Event)
	}
}

// GetTodayPlan returns the plan for the user's current day, creating it
// on first request. Returns ErrProfileIncomplete while BMI or age
// cannot be derived.
//
// Safe under concurrent first requests: the (username, day) primary key
// lets exactly one creator through and the loser re-fetches the
// winner's plan.
func (s *PlanService) GetTodayPlan(ctx context.Context, username string) (*models.ExercisePlanDB, error) {
	day, err := s.days.GetCurrentDay(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get current day", "username", username, "error", err)
		return nil, err
	}

	details, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get personal details", "username", username, "error", err)
		return nil, err
	}
	if details == nil {
		return nil, ErrProfileIncomplete
	}

	age := ComputeAge(details.DOB, time.Now())
	bmi := ComputeBMI(details.WeightKG, details.HeightM)
	if age == nil || bmi == nil {
		return nil, ErrProfileIncomplete
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, username, day); err == nil && cached != nil {
			return cached, nil
		}
	}

	plan, err := s.planReader.GetByUsernameAndDay(ctx, username, day)
	if err != nil {
		logger.Log.Errorw("failed to get plan", "username", username, "day", day, "error", err)
		return nil, err
	}

	if plan == nil {
		targets := GenerateTargets(*bmi, day, *age)

		err := s.planWriter.Create(ctx, username, day, targets)
		if err != nil && !errors.Is(err, repositories.ErrPlanExists) {
			logger.Log.Errorw("failed to create plan", "username", username, "day", day, "error", err)
			return nil, err
		}
		if errors.Is(err, repositories.ErrPlanExists) {
			logger.Log.Infow("plan already created concurrently, re-fetching", "username", username, "day", day)
		}

		plan, err = s.planReader.GetByUsernameAndDay(ctx, username, day)
		if err != nil {
			logger.Log.Errorw("failed to re-fetch plan after create", "username", username, "day", day, "error", err)
			return nil, err
		}
		if plan == nil {
			return nil, ErrPlanNotFound
		}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, plan); err != nil {
			logger.Log.Errorw("failed to cache plan", "username", username, "day", day, "error", err)
		}
	}

	return plan, nil
}

// UpdateExercise records completed reps for one exercise on the current
// day and returns the plan with the recomputed completion percentage.
// The rep write and the recomputation share one transaction that
// RecordCompletion commits before returning; the cache invalidation and
// the progress event therefore follow the committed row, and a
// concurrent plan read cannot re-cache the pre-update state.
func (s *PlanService) UpdateExercise(ctx context.Context, username, exerciseKind string, completedReps int) (*models.ExercisePlanDB, error) {
	exercise, ok := models.ParseExercise(exerciseKind)
	if !ok {
		logger.Log.Warnw("rejected unknown exercise kind", "username", username, "exercise", exerciseKind)
		return nil, ErrInvalidExerciseKind
	}

	day, err := s.days.GetCurrentDay(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get current day", "username", username, "error", err)
		return nil, err
	}

	plan, err := s.planWriter.RecordCompletion(ctx, username, day, exercise, completedReps)
	if err != nil {
		if errors.Is(err, repositories.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		logger.Log.Errorw("failed to record completion", "username", username, "day", day, "exercise", exercise, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, username, day); err != nil {
			logger.Log.Errorw("failed to invalidate cached plan", "username", username, "day", day, "error", err)
		}
	}

	s.publishProgress(ctx, models.ProgressEvent{
		EventID:       uuid.NewString(),
		Timestamp:     time.Now().Unix(),
		Username:      username,
		Day:           day,
		Event:         models.EventExerciseUpdated,
		Exercise:      string(exercise),
		CompletedReps: completedReps,
		Completion:    plan.Completion,
	})

	return plan, nil
}

// AdvanceDay moves the user to the next plan day. No completion check,
// no upper bound; the next plan is generated lazily on first request.
func (s *PlanService) AdvanceDay(ctx context.Context, username string) (int, error) {
	day, err := s.dayWriter.Advance(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to advance day", "username", username, "error", err)
		return 0, err
	}

	s.publishProgress(ctx, models.ProgressEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Username:  username,
		Day:       day,
		Event:     models.EventDayAdvanced,
	})

	return day, nil
}
