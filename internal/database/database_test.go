package database

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frtSuite/internal/config"
)

func TestDSN(t *testing.T) {
	got := DSN(config.Database{Host: "db", Port: "5432", Name: "frt", User: "u", Password: "p", SSLMode: "disable"})

	assert.Equal(t, "postgres://u:p@db:5432/frt?sslmode=disable", got)
}

func TestDSN_EscapesCredentials(t *testing.T) {
	password := `p@ss word'"=x`
	got := DSN(config.Database{Host: "db", Port: "5432", Name: "frt", User: "tester", Password: password, SSLMode: "require"})

	u, err := url.Parse(got)
	require.NoError(t, err)
	pass, ok := u.User.Password()
	require.True(t, ok)
	assert.Equal(t, password, pass)
	assert.Equal(t, "tester", u.User.Username())
	assert.Equal(t, "db:5432", u.Host)
	assert.Equal(t, "/frt", u.Path)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
}
