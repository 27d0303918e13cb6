package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	svc := &SystemService{}
	resp, err := svc.Root(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "LexAid Legal Assistant Backend Running", resp.Message)
}

func TestTestWithoutDatabase(t *testing.T) {
	svc := &SystemService{}
	resp, err := svc.Test(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "running", resp.Backend)
	assert.Equal(t, "not configured", resp.Database)
	assert.Equal(t, "not connected", resp.ConnectionStatus)
	assert.NotNil(t, resp.Collections)
	assert.Empty(t, resp.Collections)
}
