//go:build integration
// +build integration

package database

import (
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"frtSuite/internal/config"
)

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupTestDB opens an isolated schema and drops it when the test ends.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := DSN(config.Database{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
		Name:     getEnvOrDefault("DB_NAME", "postgres"),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASS", "postgres"),
		SSLMode:  "disable",
	})
	silent := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	master, err := gorm.Open(postgres.Open(dsn), silent)
	require.NoError(t, err)

	schema := fmt.Sprintf("test_schema_%d_%d", time.Now().UnixNano(), rand.Intn(10000))
	require.NoError(t, master.Exec("CREATE SCHEMA "+schema).Error)

	db, err := gorm.Open(postgres.Open(dsn+" search_path="+schema), silent)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Run{}, &ScenarioResult{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		if err := master.Exec("DROP SCHEMA IF EXISTS " + schema + " CASCADE").Error; err != nil {
			t.Logf("Warning: Failed to drop test schema %s: %v", schema, err)
		}
		if sqlDB, err := master.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestRunRepository_Integration(t *testing.T) {
	repo := NewRunRepository(setupTestDB(t))

	run := &Run{Browser: "chromium", BaseURL: "https://www.freerangetesters.com", Status: "running", StartedAt: time.Now()}
	require.NoError(t, repo.CreateRun(run))
	require.NotZero(t, run.ID)

	require.NoError(t, repo.AddScenarioResult(&ScenarioResult{
		RunID: run.ID, Feature: "Navigation", Scenario: "Landing", Status: "passed", DurationMs: 1200,
	}))
	require.NoError(t, repo.AddScenarioResult(&ScenarioResult{
		RunID: run.ID, Feature: "Navigation", Scenario: "Checkout", Status: "failed", Error: "assertion mismatch", DurationMs: 800,
	}))

	finished := time.Now()
	require.NoError(t, repo.FinishRun(run.ID, "failed", 1, finished))

	got, err := repo.GetRunByID(run.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", got.Status)
	assert.Equal(t, 1, got.ExitCode)
	require.NotNil(t, got.FinishedAt)

	results, err := repo.ListScenarioResults(run.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Landing", results[0].Scenario)
	assert.Equal(t, "failed", results[1].Status)
}
