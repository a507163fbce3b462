package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_DatabaseFailureReturnsStatus(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("LOG_LEVEL", "fatal")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1")
	t.Setenv("DB_NAME", "frt")
	t.Setenv("DB_USER", "tester")
	t.Setenv("MIGRATIONS_PATH", "file://"+t.TempDir())

	assert.Equal(t, 1, run(nil))
}
