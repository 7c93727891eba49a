// File: internal/logger/logger.go
// Author: momentics <momentics@gmail.com>
//
// Process-wide log setup: stdlib log writing to both stdout and a
// timestamped file under logs/.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Setup initializes logging to write to both a file in the logs directory and stdout.
func Setup(appName string) (*os.File, error) {
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", appName, timestamp))

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	log.Printf("Logging initialized for %s (log file: %s)", appName, logFilePath)
	return logFile, nil
}
