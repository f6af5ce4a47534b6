package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetEnv(t *testing.T) {
	require.NoError(t, SetEnv(t, "EDI_TEST_KEY", "somevalue"))
	defer func() { _ = UnsetEnv(t, "EDI_TEST_KEY") }()

	assert.Equal(t, "somevalue", GetEnv("EDI_TEST_KEY"))
}

func TestGetEnvMissingKey(t *testing.T) {
	assert.Equal(t, "", GetEnv("EDI_TEST_KEY_THAT_DOES_NOT_EXIST"))
}

func TestLookupEnv(t *testing.T) {
	require.NoError(t, SetEnv(t, "EDI_TEST_LOOKUP", "found"))
	defer func() { _ = UnsetEnv(t, "EDI_TEST_LOOKUP") }()

	value, ok := LookupEnv("EDI_TEST_LOOKUP")
	assert.True(t, ok)
	assert.Equal(t, "found", value)
}

func TestLookupEnvMissingKey(t *testing.T) {
	value, ok := LookupEnv("EDI_TEST_LOOKUP_MISSING")
	assert.False(t, ok)
	assert.Equal(t, "", value)
}

func TestUnsetEnv(t *testing.T) {
	require.NoError(t, SetEnv(t, "EDI_TEST_UNSET", "present"))
	require.NoError(t, UnsetEnv(t, "EDI_TEST_UNSET"))

	assert.Equal(t, "", GetEnv("EDI_TEST_UNSET"))
}
