package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		line := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()
	sql := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("errors are JSON lines", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormLogger(zerolog.New(&buf), logger.Error)

		l.Trace(ctx, time.Now(), sql, errors.New("boom"))
		l.Trace(ctx, time.Now(), sql, gorm.ErrRecordNotFound)
		l.Trace(ctx, time.Now(), sql, nil)

		lines := logLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "error", lines[0]["level"])
		assert.Equal(t, "gorm", lines[0]["component"])
		assert.Equal(t, "SELECT 1", lines[0]["sql"])
		assert.Equal(t, "boom", lines[0]["error"])
	})

	t.Run("slow queries warn", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormLogger(zerolog.New(&buf), logger.Warn)

		l.Trace(ctx, time.Now().Add(-time.Second), sql, nil)

		lines := logLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "slow query", lines[0]["message"])
	})

	t.Run("silent", func(t *testing.T) {
		var buf bytes.Buffer
		l := newGormLogger(zerolog.New(&buf), logger.Info).LogMode(logger.Silent)

		l.Trace(ctx, time.Now(), sql, errors.New("boom"))
		l.Error(ctx, "driver said %s", "no")
		assert.Zero(t, buf.Len())
	})
}

func TestGormLogger_Messages(t *testing.T) {
	var buf bytes.Buffer
	l := newGormLogger(zerolog.New(&buf), logger.Warn)

	l.Info(context.Background(), "ignored %d", 1)
	l.Warn(context.Background(), "pool at %d%%", 90)

	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "pool at 90%", lines[0]["message"])
}
