package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("PRESS_DEBOUNCE_MS", "")

	assert := assert.New(t)
	assert.Equal(8080, GetPort())
	assert.Equal([]string{"*"}, GetAllowedOrigins())
	assert.Equal(50*time.Millisecond, GetPressDebounce())
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://example.com,")
	t.Setenv("KEY_WIDTH", "not a number")

	assert := assert.New(t)
	assert.Equal(9000, GetPort())
	assert.Equal([]string{"http://localhost:5173", "https://example.com"}, GetAllowedOrigins())
	assert.Equal(25, GetKeyWidth())
}
