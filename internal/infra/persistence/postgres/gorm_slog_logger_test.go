package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatementKind(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		`SELECT * FROM "users"`:          "select",
		"  insert into ratings values ()": "insert",
		"UPDATE users SET age = 3":        "update",
		"WITH x AS (SELECT 1) SELECT 1":   "other",
		"":                                "unknown",
	}

	for sql, want := range tests {
		assert.Equal(t, want, statementKind(sql), sql)
	}
}

func TestQueryLogger_Trace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)), false, 10*time.Millisecond)
	ctx := context.Background()
	fc := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(ctx, time.Now(), fc, nil)
	assert.Empty(t, buf.String(), "fast queries are quiet outside debug mode")

	l.Trace(ctx, time.Now(), fc, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(ctx, time.Now().Add(-time.Second), fc, nil)
	assert.Contains(t, buf.String(), "Slow query")

	buf.Reset()
	l.Trace(ctx, time.Now(), fc, assert.AnError)
	assert.Contains(t, buf.String(), "Query failed")
	assert.Contains(t, buf.String(), assert.AnError.Error())
}
