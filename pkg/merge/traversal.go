// File: pkg/merge/traversal.go
package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/docker/go-units"
	"go.uber.org/zap"
)

// Candidate is a directory entry selected for merging.
type Candidate struct {
	Name string // Base name inside the scanned directory.
	Path string // Name joined with the scanned directory.
	Size int64  // Size in bytes at scan time.
}

// collectCandidates lists dir (non-recursively) and returns the regular files
// named *.ext that are smaller than maxSize, sorted by name. The output
// artifact itself is never a candidate.
func collectCandidates(dir, ext string, maxSize int64, logger *zap.Logger) ([]Candidate, error) {
	suffix := "." + ext
	output := OutputName(ext)

	// os.ReadDir sorts by file name, which is the merge order.
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("Failed to read directory", zap.String("dir", dir), zap.Error(err))
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) || name == output {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logger.Error("Failed to stat entry", zap.String("name", name), zap.Error(err))
			return nil, fmt.Errorf("failed to stat %s: %w", name, err)
		}
		if !info.Mode().IsRegular() {
			logger.Debug("Skipping non-regular entry", zap.String("name", name), zap.Stringer("mode", info.Mode()))
			continue
		}
		if info.Size() >= maxSize {
			logger.Debug("Skipping file at or above size limit",
				zap.String("name", name),
				zap.String("size", units.BytesSize(float64(info.Size()))),
				zap.Int64("maxSizeBytes", maxSize))
			continue
		}

		candidates = append(candidates, Candidate{
			Name: name,
			Path: filepath.Join(dir, name),
			Size: info.Size(),
		})
	}

	logger.Debug("Collected candidates", zap.String("dir", dir), zap.Int("count", len(candidates)))
	return candidates, nil
}
