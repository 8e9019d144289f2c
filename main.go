package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"mergefiles/cmd"
	"mergefiles/pkg/logging"
	"mergefiles/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := logging.Setup(false, "mergefiles", version.Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrUsage) {
			// cobra already printed the error and usage.
			os.Exit(1)
		}
		// Fatal exits with status 1 after writing the error chain to stderr.
		zap.L().Fatal("mergefiles execution failed", zap.Error(err))
	}

	// Syncing stderr fails with EINVAL on pipes and character devices
	// that are not terminals.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := zap.L().Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
