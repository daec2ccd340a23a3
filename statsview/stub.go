//go:build !statsview
// +build !statsview

package statsview

import (
	"io"

	"github.com/tendrilgames/chronoframe/scheduler"
)

// Launch does nothing in a build without the statsview tag.
func Launch(output io.Writer, metrics *scheduler.JitterMetrics) {}

// Available returns false in a build without the statsview tag.
func Available() bool {
	return false
}
