package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fitplanhq/fitplan-backend/internal/logger"
)

// ErrDayCounterNotFound is returned when advancing the day for a user
// whose counter was never initialized.
var ErrDayCounterNotFound = errors.New("day counter not found")

// DayReadRepository reads the per-user day counter.
type DayReadRepository struct {
	db *sqlx.DB
}

func NewDayReadRepository(db *sqlx.DB) *DayReadRepository {
	return &DayReadRepository{db: db}
}

// GetCurrentDay returns the user's current plan day.
// A user without a counter row is on day 1.
func (r *DayReadRepository) GetCurrentDay(ctx context.Context, username string) (int, error) {
	const query = `
		SELECT day
		FROM day_user
		WHERE username = $1
	`

	var day int
	err := r.db.GetContext(ctx, &day, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", day,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}

	return day, nil
}

// DayWriteRepository mutates the per-user day counter.
type DayWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewDayWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DayWriteRepository {
	return &DayWriteRepository{db: db, txGetter: txGetter}
}

func (r *DayWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Init seeds the counter at day 1 during registration.
func (r *DayWriteRepository) Init(ctx context.Context, username string) error {
	query := `
		INSERT INTO day_user (username, day)
		VALUES ($1, 1)
		ON CONFLICT (username) DO NOTHING
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	return err
}

// Advance increments the counter by one, unconditionally, and returns
// the new day. The counter never decreases and has no upper bound.
func (r *DayWriteRepository) Advance(ctx context.Context, username string) (int, error) {
	query := `
		UPDATE day_user
		SET day = day + 1
		WHERE username = $1
		RETURNING day
	`

	var day int
	err := sqlx.GetContext(ctx, r.executor(ctx), &day, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", day,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrDayCounterNotFound
	}
	if err != nil {
		return 0, err
	}

	return day, nil
}
