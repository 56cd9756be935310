package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, BackendMemory, cfg.Catalog.Backend)
	assert.False(t, cfg.Transfer.RecordOrders)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	require.Len(t, cfg.Scanner.Devices, 1)
	assert.Equal(t, "cam-front", cfg.Scanner.Devices[0].ID)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("CATALOG_BACKEND", "Postgres")
	v.Set("TRANSFER_RECORD_ORDERS", "true")
	v.Set("HTTP_PORT", "9090")
	v.Set("SCANNER_DEVICES", "a:Front, b")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.Catalog.Backend)
	assert.True(t, cfg.Transfer.RecordOrders)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []DeviceConfig{{ID: "a", Label: "Front"}, {ID: "b", Label: "Camera b"}}, cfg.Scanner.Devices)
}

func TestFromViper_BackendDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("CATALOG_BACKEND", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "sb", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/sb?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
