// Package report is the compiler's diagnostic sink: it formats and prints
// fatal errors, warnings, and progress information. Per the front end's
// design (no recovery, no source position tracking), every reported error
// ends the process -- there is no severity that allows compilation to
// continue past it.
package report

import "sync"

// Enumeration of the supported log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors.
	LogLevelWarn           // Displays errors and warnings.
	LogLevelVerbose        // Displays errors, warnings, and phase progress.
)

// reporter is the process-wide diagnostic sink. It is guarded by a mutex so
// that a concurrent caller (eg. a driver compiling several files) cannot
// interleave a banner with a message body.
type reporter struct {
	m        sync.Mutex
	logLevel int
	warnings []string
}

var rep = &reporter{logLevel: LogLevelVerbose}

// Init sets the global log level. Safe to call more than once.
func Init(logLevel int) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.logLevel = logLevel
}

func level() int {
	rep.m.Lock()
	defer rep.m.Unlock()

	return rep.logLevel
}
