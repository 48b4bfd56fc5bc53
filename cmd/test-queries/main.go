// Command test-queries smoke-tests a running CarPilot instance.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/carpilot/carpilot/internal/testqueries"
)

func main() {
	config := testqueries.DefaultConfig()

	url := flag.String("url", config.BaseURL, "base URL of the service")
	top := flag.Int("top", config.TopK, "top_k to request per query")
	workers := flag.Int("workers", config.Workers, "number of concurrent workers")
	timeout := flag.Duration("timeout", config.Timeout, "HTTP request timeout")
	logFile := flag.String("log", "", "log file for test output")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	help := flag.Bool("help", false, "show help")
	flag.Parse()

	if *help {
		testqueries.ShowHelp()
		return
	}

	config.BaseURL = *url
	config.TopK = *top
	config.Workers = *workers
	config.Timeout = *timeout
	config.LogFile = *logFile
	config.Verbose = *verbose

	if err := testqueries.SetupLogging(config.LogFile); err != nil {
		os.Stderr.WriteString("failed to set up logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := testqueries.Run(ctx, config); err != nil {
		os.Stderr.WriteString("query test failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
