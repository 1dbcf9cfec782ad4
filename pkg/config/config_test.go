package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefectoMemoria(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "memory")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 15*time.Second, cfg.RecordStore.Timeout)
	assert.Equal(t, time.Duration(0), cfg.Memory.Latency)
	assert.Equal(t, "development", cfg.App.Env)
}

func TestFromViper_RemotoSinURL_Falla(t *testing.T) {
	v := viper.New()
	_, err := fromViper(v)
	assert.Error(t, err, "remote es el driver por defecto y exige RECORDSTORE_BASE_URL")
}

func TestFromViper_RemotoConURL(t *testing.T) {
	v := viper.New()
	v.Set("RECORDSTORE_BASE_URL", "https://api.example.test/v1/")
	v.Set("RECORDSTORE_TIMEOUT_SECONDS", "5")
	v.Set("MEMORY_LATENCY_MS", 250)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.test/v1", cfg.RecordStore.BaseURL, "se recorta la barra final")
	assert.Equal(t, 5*time.Second, cfg.RecordStore.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Memory.Latency)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "stock", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/stock?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
