//go:build statsview
// +build statsview

package statsview

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/tendrilgames/chronoframe/scheduler"
)

const Address = "localhost:12600"
const url = "/debug/statsview"
const jitterURL = "/debug/jitter"

// Launch starts the statsview runtime dashboard and, if metrics is
// non-nil, a companion JSON endpoint serving its current snapshot on every
// request — go-echarts/statsview has no extension point for arbitrary
// application metrics, so the jitter feed is served directly alongside it
// rather than folded into its own dashboard.
func Launch(output io.Writer, metrics *scheduler.JitterMetrics) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	if metrics != nil {
		http.HandleFunc(jitterURL, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(metrics.Snapshot())
		})
	}

	go mgr.Start()

	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
	if metrics != nil {
		fmt.Fprintf(output, "jitter trace available at %s%s\n", Address, jitterURL)
	}
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
