// compileinfoprint is blank-imported for the side effect of printing build
// provenance to os.Stderr when a tool starts up.
package compileinfoprint

import "github.com/plinktools/gwaspost/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}
