package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogging(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	SetupLogging("debug")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	SetupLogging("warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	SetupLogging("loud")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	SetupLogging("")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
