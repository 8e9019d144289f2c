package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"mergefiles/pkg/logging"
	"mergefiles/pkg/merge"
	"mergefiles/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// mergeArgs requires <extension> <max_size> and checks that max_size is an
// integer before anything touches the filesystem.
func mergeArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	_, err := parseMaxSize(args[1])
	return err
}

// parseMaxSize parses a base-10 integer. Values beyond int64 clamp to
// math.MaxInt64 or math.MinInt64.
func parseMaxSize(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	if err != nil {
		return 0, fmt.Errorf("invalid max_size %q: must be an integer number of bytes", s)
	}
	return n, nil
}

// setupLogging switches the global logger to the development config when
// --debug is set.
func setupLogging(cmd *cobra.Command, _ []string) error {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}
	if !debug {
		return nil
	}
	return logging.Setup(true, appName, version.Version)
}

func runMerge(cmd *cobra.Command, args []string) error {
	// Arguments are valid past this point; runtime failures are reported
	// by the caller's logger, not with usage text.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	maxSize, err := parseMaxSize(args[1])
	if err != nil {
		return err
	}

	opts := merge.Options{
		Dir:       merge.DefaultDir,
		Extension: args[0],
		MaxSize:   maxSize,
	}
	if _, err := merge.Run(opts, cmd.OutOrStdout(), zap.L()); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	return nil
}
