// Package logging builds the process-wide zap logger.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger *zap.Logger

// Setup builds Logger from the production config, or the development config
// when debug is set, and installs it as the zap global. Logs go to stderr so
// stdout stays free for progress output.
func Setup(debug bool, appName, appVersion string) error {
	cfg := newConfig(debug)
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		Logger = zap.NewNop()
		return err
	}

	zap.ReplaceGlobals(Logger)
	return nil
}

func newConfig(debug bool) zap.Config {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg
}
