package jsonflow

import "github.com/juju/loggo"

// logger is the package-level logger: trace for token-level detail,
// debug for per-chunk summaries, error right before a Malformed result
// is handed back to the caller.
var logger = loggo.GetLogger("jsonflow.parser")

// SetDebug toggles verbose trace logging of every token the state
// machine consumes. Off (warning level and above) by default.
func SetDebug(on bool) {
	if on {
		logger.SetLogLevel(loggo.TRACE)
	} else {
		logger.SetLogLevel(loggo.WARNING)
	}
}

func init() {
	logger.SetLogLevel(loggo.WARNING)
}
