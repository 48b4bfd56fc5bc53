package testqueries

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/carpilot/carpilot/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "query_test_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the test queries tool.
func ShowHelp() {
	os.Stdout.WriteString(`CarPilot Query Test Tool
========================

Submits canned recommendation queries to a running CarPilot instance and
verifies ranking invariants: non-increasing scores, honored constraints,
suggestion consistency, and idempotence.

Usage:
  go run cmd/test-queries/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:5000")
  -top int
        top_k to request per query (default 10)
  -workers int
        Number of concurrent workers (default CPU cores)
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for test output (default: query_test_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message
`)
}
