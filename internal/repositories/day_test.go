package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupDayPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS day_user (
		username VARCHAR(50) PRIMARY KEY,
		day INTEGER NOT NULL DEFAULT 1
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestDayWriteRepository_Init(t *testing.T) {
	db, teardown := setupDayPostgresContainer(t)
	defer teardown()

	writeRepo := NewDayWriteRepository(db, nil)
	readRepo := NewDayReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Init(ctx, "alice"))

	// Re-init keeps the existing counter
	assert.NoError(t, writeRepo.Init(ctx, "alice"))

	day, err := readRepo.GetCurrentDay(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, 1, day)
}

func TestDayReadRepository_GetCurrentDay_DefaultsToOne(t *testing.T) {
	db, teardown := setupDayPostgresContainer(t)
	defer teardown()

	readRepo := NewDayReadRepository(db)

	day, err := readRepo.GetCurrentDay(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Equal(t, 1, day)
}

func TestDayWriteRepository_Advance(t *testing.T) {
	db, teardown := setupDayPostgresContainer(t)
	defer teardown()

	writeRepo := NewDayWriteRepository(db, nil)
	readRepo := NewDayReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Init(ctx, "alice"))

	day, err := writeRepo.Advance(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, 2, day)

	day, err = writeRepo.Advance(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, 3, day)

	stored, err := readRepo.GetCurrentDay(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, 3, stored)
}

func TestDayWriteRepository_Advance_MissingCounter(t *testing.T) {
	db, teardown := setupDayPostgresContainer(t)
	defer teardown()

	writeRepo := NewDayWriteRepository(db, nil)

	day, err := writeRepo.Advance(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrDayCounterNotFound)
	assert.Zero(t, day)
}
