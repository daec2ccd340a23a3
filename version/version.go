// Package version reports build identity for the demo binaries' -version
// flag: an application name, a version string, and VCS revision
// information pulled from the Go module's own build metadata.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to this project.
const ApplicationName = "Chronoframe"

// number is set via -ldflags by the release build; empty means the binary
// was built some other way (go run, go build without flags).
var number string

// revision holds the vcs revision, suffixed with "+dirty" if the working
// tree had uncommitted changes at build time.
var revision string

// version holds the current version string. "unreleased" means a manual
// build with vcs information available; "local" means no vcs information
// is available at all (e.g. "go run .").
var version string

// Version returns the version string, the revision string, and whether
// this is a numbered release build (in which case the revision should be
// used sparingly — it adds little over the version number itself).
func Version() (string, string, bool) {
	return version, revision, version == number
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number == "" {
		if vcs {
			version = "unreleased"
		} else {
			version = "local"
		}
	} else {
		version = number
	}
}
