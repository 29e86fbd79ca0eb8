package config

import "os"

// Development reports whether MINES_DEVELOPMENT is set to anything but "0".
func Development() bool {
	development, ok := os.LookupEnv("MINES_DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile returns the MINES_LOG_FILE override, if set.
func LogFile() (string, bool) {
	return os.LookupEnv("MINES_LOG_FILE")
}
