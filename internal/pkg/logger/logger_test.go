package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerCarriesFieldsInKeyOrder(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := FromZap(zap.New(core)).With(map[string]interface{}{"run_id": "abc"})

	log.Info("probe finished", map[string]interface{}{"port": 5678, "available": true})
	log.Error("lookup failed", errors.New("boom"), nil)

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].Context
	require.Len(t, first, 3)
	assert.Equal(t, "run_id", first[0].Key)
	assert.Equal(t, "available", first[1].Key)
	assert.Equal(t, "port", first[2].Key)

	assert.Equal(t, "lookup failed", entries[1].Message)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestNewQuietDiscards(t *testing.T) {
	log := New(false)
	log.Debug("ignored", map[string]interface{}{"k": "v"})
	assert.NoError(t, log.Sync())
}
