package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("IDEAHUB_TEST_STR", "value")

	assert.Equal(t, "value", GetEnv("IDEAHUB_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("IDEAHUB_TEST_STR_MISSING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("IDEAHUB_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("IDEAHUB_TEST_INT", 7))

	assert.Equal(t, 7, GetEnvInt("IDEAHUB_TEST_INT_MISSING", 7))

	t.Setenv("IDEAHUB_TEST_INT_BAD", "not-a-number")
	assert.Equal(t, 7, GetEnvInt("IDEAHUB_TEST_INT_BAD", 7))
}
