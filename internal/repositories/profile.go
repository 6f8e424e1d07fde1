package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fitplanhq/fitplan-backend/internal/logger"
	"github.com/fitplanhq/fitplan-backend/internal/models"
)

// ProfileReadRepository reads personal details used to derive BMI and age.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUsername returns the personal details row for the user, or nil if
// the user has no row at all. Individual fields may still be NULL.
func (r *ProfileReadRepository) GetByUsername(ctx context.Context, username string) (*models.PersonalDetailsDB, error) {
	const query = `
		SELECT username, dob, weight, height
		FROM user_personal_details
		WHERE username = $1
	`

	var details models.PersonalDetailsDB
	err := r.db.GetContext(ctx, &details, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &details, nil
}

// ProfileWriteRepository writes personal details.
type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProfileWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Init seeds an empty personal details row at registration time.
func (r *ProfileWriteRepository) Init(ctx context.Context, username string) error {
	query := `
		INSERT INTO user_personal_details (username)
		VALUES ($1)
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

// Save upserts the user's date of birth, weight (kg) and height (meters).
func (r *ProfileWriteRepository) Save(ctx context.Context, username string, dob *time.Time, weightKG, heightM *float64) error {
	query := `
		INSERT INTO user_personal_details (username, dob, weight, height)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE
		SET dob = EXCLUDED.dob,
		    weight = EXCLUDED.weight,
		    height = EXCLUDED.height
	`
	args := []any{username, dob, weightKG, heightM}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
