package tools

import (
	"os"

	charmlog "github.com/charmbracelet/log"
)

// logger is the package diagnostic sink for non-fatal advisories (e.g. a
// redundant conversion request). Advisories never affect control flow.
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	Level:  charmlog.WarnLevel,
	Prefix: "tools",
})

// SetLogger redirects the package advisory sink, e.g. to a logger carried
// by an application context. A nil logger is ignored.
func SetLogger(l *charmlog.Logger) {
	if l != nil {
		logger = l
	}
}
