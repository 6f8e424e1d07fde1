package repositories

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/fitplanhq/fitplan-backend/internal/logger"
	"github.com/fitplanhq/fitplan-backend/internal/models"
)

var (
	// ErrPlanExists is returned when a plan for the same (username, day)
	// already exists. The primary key resolves concurrent creators:
	// first writer wins, the loser re-fetches.
	ErrPlanExists = errors.New("exercise plan already exists for this day")

	// ErrPlanNotFound is returned when recording completion against a
	// (username, day) with no plan row.
	ErrPlanNotFound = errors.New("exercise plan not found")

	// ErrZeroTarget guards the completion computation. Generated targets
	// are always positive, so hitting this means corrupt data.
	ErrZeroTarget = errors.New("exercise plan has a non-positive target")
)

const uniqueViolationCode = "23505"

// PlanReadRepository fetches exercise plans.
type PlanReadRepository struct {
	db *sqlx.DB
}

func NewPlanReadRepository(db *sqlx.DB) *PlanReadRepository {
	return &PlanReadRepository{db: db}
}

// GetByUsernameAndDay returns the plan for the exact (username, day)
// key, or nil if no plan was created for that day yet.
func (r *PlanReadRepository) GetByUsernameAndDay(ctx context.Context, username string, day int) (*models.ExercisePlanDB, error) {
	const query = `
		SELECT username, day, pushups, situps, squats,
		       pushups_completed, situps_completed, squats_completed, completion
		FROM exercise_plan
		WHERE username = $1 AND day = $2
	`

	var plan models.ExercisePlanDB
	err := r.db.GetContext(ctx, &plan, query, username, day)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, day},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// PlanWriteRepository creates plans and records exercise completion.
type PlanWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPlanWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PlanWriteRepository {
	return &PlanWriteRepository{db: db, txGetter: txGetter}
}

func (r *PlanWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts a new plan with the generated targets. Completed
// counters and the completion percentage start at zero. A duplicate
// (username, day) insert returns ErrPlanExists.
func (r *PlanWriteRepository) Create(ctx context.Context, username string, day int, targets map[models.Exercise]int) error {
	query := `
		INSERT INTO exercise_plan
			(username, day, pushups, situps, squats,
			 pushups_completed, situps_completed, squats_completed, completion)
		VALUES ($1, $2, $3, $4, $5, 0, 0, 0, 0)
	`
	args := []any{username, day, targets[models.Pushups], targets[models.Situps], targets[models.Squats]}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrPlanExists
	}

	return err
}

// RecordCompletion sets the completed rep count for one exercise and
// recomputes the completion percentage under a row lock, so the two
// writes commit or roll back together. It joins the transaction from
// the context when one is present; otherwise it opens its own and
// commits before returning, so the updated row is visible to other
// connections by the time the caller touches caches or publishes
// events.
//
// The completion percentage is the average of completed/target across
// the three exercises, in percent, rounded to two decimals. It is not
// clamped: reporting more reps than assigned yields more than 100.
func (r *PlanWriteRepository) RecordCompletion(ctx context.Context, username string, day int, exercise models.Exercise, reps int) (*models.ExercisePlanDB, error) {
	const selectQuery = `
		SELECT username, day, pushups, situps, squats,
		       pushups_completed, situps_completed, squats_completed, completion
		FROM exercise_plan
		WHERE username = $1 AND day = $2
		FOR UPDATE
	`

	var (
		executor sqlx.ExtContext
		ownTx    *sqlx.Tx
	)
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}
	if executor == nil {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return nil, err
		}
		ownTx = tx
		executor = tx
		defer ownTx.Rollback()
	}

	var plan models.ExercisePlanDB
	err := sqlx.GetContext(ctx, executor, &plan, selectQuery, username, day)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(selectQuery), " "),
		"args", []any{username, day},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	plan.SetCompleted(exercise, reps)

	completion, err := completionPercent(&plan)
	if err != nil {
		return nil, err
	}
	plan.Completion = completion

	updateQuery := `
		UPDATE exercise_plan
		SET pushups_completed = $3,
		    situps_completed = $4,
		    squats_completed = $5,
		    completion = $6
		WHERE username = $1 AND day = $2
	`
	args := []any{username, day, plan.PushupsCompleted, plan.SitupsCompleted, plan.SquatsCompleted, plan.Completion}

	_, err = executor.ExecContext(ctx, updateQuery, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(updateQuery), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	if ownTx != nil {
		if err := ownTx.Commit(); err != nil {
			return nil, err
		}
	}

	return &plan, nil
}

// completionPercent averages completed/target over the three exercises.
func completionPercent(plan *models.ExercisePlanDB) (float64, error) {
	var sum float64
	for _, e := range models.Exercises() {
		target := plan.Target(e)
		if target <= 0 {
			return 0, ErrZeroTarget
		}
		sum += float64(plan.Completed(e)) / float64(target)
	}

	pct := sum * 100 / 3
	return math.Round(pct*100) / 100, nil
}
