package yalogger_test

import (
	"testing"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yalogger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WithFieldDoesNotMutate(t *testing.T) {
	t.Parallel()

	base := yalogger.NewBaseLogger(nil).NewLogger()

	derived := base.WithField("env_key", "REPORT_WINDOW")

	assert.Nil(t, base.GetField("env_key"))
	assert.Equal(t, "REPORT_WINDOW", derived.GetField("env_key"))
}

func TestLogger_WithRequestUUID(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	log := yalogger.NewBaseLogger(&yalogger.Config{Level: yalogger.InfoLevel}).
		NewLogger().
		WithRequestUUID(id)

	assert.Equal(t, id, log.GetField(yalogger.KeyRequestID))
}

func TestLogger_GetFieldsIsCopy(t *testing.T) {
	t.Parallel()

	log := yalogger.NewBaseLogger(nil).NewLogger().WithFields(map[string]any{"a": 1, "b": 2})

	fields := log.GetFields()
	delete(fields, "a")

	assert.Equal(t, 1, log.GetField("a"))
}

func TestLevel_UnmarshalText(t *testing.T) {
	t.Parallel()

	cases := map[string]yalogger.Level{
		"info":    yalogger.InfoLevel,
		"DEBUG":   yalogger.DebugLevel,
		"warning": yalogger.WarnLevel,
		" trace ": yalogger.TraceLevel,
	}

	for text, want := range cases {
		var level yalogger.Level

		require.NoError(t, level.UnmarshalText([]byte(text)), text)
		assert.Equal(t, want, level, text)
	}

	var level yalogger.Level

	assert.ErrorIs(t, level.UnmarshalText([]byte("loud")), yalogger.ErrInvalidLogLevel)
}

func TestLevel_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Warn", yalogger.WarnLevel.String())
	assert.Equal(t, "Unknown", yalogger.Level(42).String())
}
