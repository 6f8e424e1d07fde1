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

func setupProfilePostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS user_personal_details (
		username VARCHAR(50) PRIMARY KEY,
		dob DATE,
		weight DOUBLE PRECISION,
		height DOUBLE PRECISION
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

func TestProfileWriteRepository_Init(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	repo := NewProfileWriteRepository(db, nil)
	ctx := context.Background()

	assert.NoError(t, repo.Init(ctx, "alice"))

	// Init is idempotent
	assert.NoError(t, repo.Init(ctx, "alice"))

	var count int
	err := db.Get(&count, "SELECT COUNT(*) FROM user_personal_details WHERE username=$1", "alice")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestProfileWriteRepository_Save(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	writeRepo := NewProfileWriteRepository(db, nil)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	dob := time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC)
	weight := 70.0
	height := 1.75

	assert.NoError(t, writeRepo.Save(ctx, "alice", &dob, &weight, &height))

	details, err := readRepo.GetByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, details)
	assert.Equal(t, "alice", details.Username)
	assert.NotNil(t, details.DOB)
	assert.Equal(t, 1990, details.DOB.Year())
	assert.NotNil(t, details.WeightKG)
	assert.InDelta(t, 70.0, *details.WeightKG, 0.001)
	assert.NotNil(t, details.HeightM)
	assert.InDelta(t, 1.75, *details.HeightM, 0.001)
}

func TestProfileWriteRepository_Save_OverwritesExisting(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	writeRepo := NewProfileWriteRepository(db, nil)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	dob := time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC)
	weight := 70.0
	height := 1.75
	assert.NoError(t, writeRepo.Save(ctx, "alice", &dob, &weight, &height))

	newWeight := 68.5
	assert.NoError(t, writeRepo.Save(ctx, "alice", &dob, &newWeight, &height))

	details, err := readRepo.GetByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, details.WeightKG)
	assert.InDelta(t, 68.5, *details.WeightKG, 0.001)
}

func TestProfileReadRepository_GetByUsername(t *testing.T) {
	db, teardown := setupProfilePostgresContainer(t)
	defer teardown()

	writeRepo := NewProfileWriteRepository(db, nil)
	readRepo := NewProfileReadRepository(db)
	ctx := context.Background()

	t.Run("missing row returns nil without error", func(t *testing.T) {
		details, err := readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, details)
	})

	t.Run("seeded row has null fields", func(t *testing.T) {
		assert.NoError(t, writeRepo.Init(ctx, "bob"))

		details, err := readRepo.GetByUsername(ctx, "bob")
		assert.NoError(t, err)
		assert.NotNil(t, details)
		assert.Nil(t, details.DOB)
		assert.Nil(t, details.WeightKG)
		assert.Nil(t, details.HeightM)
	})
}
