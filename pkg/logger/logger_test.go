package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndGet(t *testing.T) {
	require.NoError(t, Init(Config{
		Level:    "debug",
		Encoding: "json",
	}))

	log := Get()
	require.NotNil(t, log)

	// Init is once-only; repeated calls keep the existing logger.
	require.NoError(t, Init(Config{Level: "error", Encoding: "console"}))
	assert.Same(t, log, Get())

	// Syncing stdout can legitimately fail on some platforms; only check
	// that it does not panic.
	_ = Sync()
}

func TestForPoolAnnotatesLogger(t *testing.T) {
	log := ForPool("bullets")
	require.NotNil(t, log)
	assert.NotSame(t, Get(), log, "ForPool returns a child logger")
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, err := newLogger(Config{Level: "loud", Encoding: "json"})
	assert.Error(t, err)
}
