package constants

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func getInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func GetPort() int {
	return getInt("PORT", 8080)
}

// GetAllowedOrigins reads a comma separated CORS_ORIGINS list.
func GetAllowedOrigins() []string {
	val := os.Getenv("CORS_ORIGINS")
	if val == "" {
		return []string{"*"}
	}
	var res []string
	for _, origin := range strings.Split(val, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			res = append(res, origin)
		}
	}
	return res
}

// GetPressRate is the number of key presses per second the server accepts.
func GetPressRate() int {
	return getInt("PRESS_RATE", 20)
}

func GetPressDebounce() time.Duration {
	return time.Duration(getInt("PRESS_DEBOUNCE_MS", 50)) * time.Millisecond
}

func GetKeyWidth() int {
	return getInt("KEY_WIDTH", 25)
}

const DefaultOctave = 4
