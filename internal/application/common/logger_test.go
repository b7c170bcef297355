package common_test

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/featherlane/henhouse-go/internal/application/common"
)

func TestStdGameLogger_FiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewStdGameLogger(log.New(&buf, "", 0), "warn")

	logger.Log("debug", "noise", nil)
	logger.Log("info", "still noise", nil)
	assert.Empty(t, buf.String())

	logger.Log("warn", "feed running low", nil)
	assert.Equal(t, "[warn] feed running low\n", buf.String())
}

func TestStdGameLogger_AppendsMetadata(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewStdGameLogger(log.New(&buf, "", 0), "debug")

	logger.Log("info", "farm status", map[string]interface{}{"money": 100.0})

	assert.Contains(t, buf.String(), "[info] farm status")
	assert.Contains(t, buf.String(), "money:100")
}

func TestStdGameLogger_UnknownLevelTreatedAsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewStdGameLogger(log.New(&buf, "", 0), "info")

	logger.Log("trace", "odd level", nil)

	assert.Contains(t, buf.String(), "[trace] odd level")
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewStdGameLogger(log.New(&buf, "", 0), "debug")
	ctx := common.WithLogger(context.Background(), logger)

	common.LoggerFromContext(ctx).Log("info", "attached", nil)
	assert.Contains(t, buf.String(), "attached")

	// A bare context yields a no-op logger rather than a nil panic.
	assert.NotPanics(t, func() {
		common.LoggerFromContext(context.Background()).Log("info", "dropped", nil)
	})
}
