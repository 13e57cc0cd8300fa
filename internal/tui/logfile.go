package tui

import (
	"os"
)

// GetLogFilePath returns the path of the log file, or "" when file logging
// is disabled. File logging is enabled by setting PANCAKE_LOG_FILE.
func GetLogFilePath() string {
	return os.Getenv("PANCAKE_LOG_FILE")
}
