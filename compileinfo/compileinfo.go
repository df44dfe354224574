// Package compileinfo reports the build provenance of a binary so that log
// output captured from cluster jobs can be traced back to an exact commit.
package compileinfo

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

type BuildInfo struct {
	Path      string
	GoVersion string
	Revision  string
	BuiltAt   string
	Dirty     bool
}

func (b BuildInfo) String() string {
	suffix := ""
	if b.Dirty {
		suffix = " The working tree was dirty at build time."
	}

	return fmt.Sprintf("%s built with %s from revision %s (%s).%s", b.Path, b.GoVersion, b.Revision, b.BuiltAt, suffix)
}

func Get() BuildInfo {
	out := BuildInfo{Revision: "unknown", BuiltAt: "unknown"}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Path = bi.Path
	out.GoVersion = bi.GoVersion
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			out.Revision = setting.Value
		case "vcs.time":
			out.BuiltAt = setting.Value
		case "vcs.modified":
			out.Dirty = setting.Value == "true"
		}
	}

	return out
}

func Fprint(w io.Writer) {
	fmt.Fprintln(w, Get())
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}
