package cmd

import (
	"errors"
	"fmt"

	"mergefiles/pkg/version"

	"github.com/spf13/cobra"
)

const appName = "mergefiles"

// ErrUsage marks errors that cobra has already printed together with usage.
var ErrUsage = errors.New("usage error")

// NewRootCmd builds the mergefiles command. It has no subcommands, so every
// first positional argument is an extension.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName + " [flags] <extension> <max_size>",
		Short: "Merge same-extension files of the current directory into one",
		Long: `mergefiles concatenates every regular file in the current directory whose
name ends in .<extension> and whose size is below <max_size> bytes into
merged.<extension>. Each file is followed by a delimiter line naming it.
Files are merged in lexicographic order of their names.

Flags must come before <extension>.`,
		Example: appName + " txt 500",
		Version: version.Version,
		Args:    mergeArgs,
		PreRunE: setupLogging,
		RunE:    runMerge,
	}

	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.Flags().Bool("debug", false, "Enable development logging")
	// Everything after the first positional is positional, so a negative
	// max_size is not read as a shorthand flag.
	rootCmd.Flags().SetInterspersed(false)
	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return run(NewRootCmd())
}

// run executes root and wraps errors cobra printed itself with ErrUsage.
func run(root *cobra.Command) error {
	err := root.Execute()
	if err != nil && !root.SilenceErrors {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return err
}
