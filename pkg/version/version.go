// Package version holds build metadata injected with -ldflags -X, e.g.
// -X 'mergefiles/pkg/version.Version=1.2.3'.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// String describes the build on one line.
func String() string {
	return fmt.Sprintf("mergefiles %s (commit %s, built %s, %s %s/%s)",
		Version, Commit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
