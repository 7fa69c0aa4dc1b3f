package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-front/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "pos_session", cfg.Session.CookieName)
	assert.Equal(t, 30*time.Second, cfg.Refresh.Interval)
}

func TestLoad_EnvVarsTienenPrioridad(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DASHBOARD_REFRESH_SECONDS", "60")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, time.Minute, cfg.Refresh.Interval)
}

// Un intervalo ilegible en el entorno no debe degenerar en un scheduler con
// intervalo cero.
func TestLoad_IntervaloDeRefrescoIlegible(t *testing.T) {
	t.Setenv("DASHBOARD_REFRESH_SECONDS", "treinta")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_IntervaloDeRefrescoNoPositivo(t *testing.T) {
	t.Setenv("DASHBOARD_REFRESH_SECONDS", "0")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("DASHBOARD_REFRESH_SECONDS", "-5")
	_, err = config.Load()
	assert.Error(t, err)
}
