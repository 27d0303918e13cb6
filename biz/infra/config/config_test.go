package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "lexaid-core-api", c.Name)
	assert.Equal(t, "0.0.0.0:8000", c.ListenOn)
	assert.Equal(t, "0.0.0.0:9091", c.MetricsOn)
	assert.Equal(t, "test", c.State)
	assert.Empty(t, c.Mongo.URL)
	assert.Same(t, c, GetConfig())
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://db.internal:27017")
	t.Setenv("DATABASE_NAME", "lexaid_prod")
	t.Setenv("PORT", "9000")

	c, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db.internal:27017", c.Mongo.URL)
	assert.Equal(t, "lexaid_prod", c.Mongo.DB)
	assert.Equal(t, "0.0.0.0:9000", c.ListenOn)
}
