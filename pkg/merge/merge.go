// Package merge concatenates same-extension files of one directory into a
// single merged.<ext> artifact.
package merge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/docker/go-units"
	"go.uber.org/zap"
)

// Delimiter returns the marker line written after the content of name.
func Delimiter(name string) string {
	return fmt.Sprintf("\n--- End of file %s ---\n", name)
}

// Run merges every regular file in opts.Dir named *.<ext> and smaller than
// opts.MaxSize into <opts.Dir>/merged.<ext>. The output is truncated before
// scanning. Progress lines are written to out.
//
// The first read, decode or write failure aborts the run. Files merged before
// the failure stay in the output.
func Run(opts Options, out io.Writer, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}

	opts, err := opts.normalize()
	if err != nil {
		return Result{}, err
	}

	startTime := time.Now()
	outputName := OutputName(opts.Extension)
	result := Result{Output: filepath.Join(opts.Dir, outputName)}
	logger.Info("Starting merge",
		zap.String("dir", opts.Dir),
		zap.String("extension", opts.Extension),
		zap.Int64("maxSizeBytes", opts.MaxSize))

	if err := truncateOutput(result.Output, logger); err != nil {
		return result, fmt.Errorf("failed to create output file: %w", err)
	}

	candidates, err := collectCandidates(opts.Dir, opts.Extension, opts.MaxSize, logger)
	if err != nil {
		return result, fmt.Errorf("failed to collect files: %w", err)
	}

	for _, c := range candidates {
		if err := appendFile(result.Output, c, logger); err != nil {
			return result, fmt.Errorf("failed to merge %s: %w", c.Name, err)
		}
		result.Merged = append(result.Merged, c.Name)
		fmt.Fprintf(out, "File %s added to %s\n", c.Name, outputName)
	}

	fmt.Fprintf(out, "Merge complete. Output file: %s\n", outputName)
	logger.Info("Merge completed",
		zap.String("output", result.Output),
		zap.Int("mergedFiles", len(result.Merged)),
		zap.Duration("elapsed", time.Since(startTime)))
	return result, nil
}

// truncateOutput creates the output file or empties an existing one.
func truncateOutput(path string, logger *zap.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", path), zap.Error(err))
		return err
	}
	return f.Close()
}

// appendFile writes the content of c and its delimiter to the end of output.
// The output is opened for this one file only.
func appendFile(output string, c Candidate, logger *zap.Logger) (err error) {
	content, err := readText(c.Path)
	if err != nil {
		logger.Error("Failed to read file", zap.String("file", c.Path), zap.Error(err))
		return err
	}

	f, err := os.OpenFile(output, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Error("Failed to open output file", zap.String("file", output), zap.Error(err))
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := io.WriteString(f, content+Delimiter(c.Name)); err != nil {
		logger.Error("Failed to write to output file", zap.String("file", output), zap.Error(err))
		return err
	}

	logger.Debug("Appended file",
		zap.String("file", c.Name),
		zap.String("size", units.BytesSize(float64(c.Size))))
	return nil
}
