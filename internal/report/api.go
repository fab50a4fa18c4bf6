package report

import (
	"fmt"
	"os"
)

// Phase reports the start of a compilation phase (tokenize, lower, emit).
// Only shown at LogLevelVerbose.
func Phase(name string) {
	if level() == LogLevelVerbose {
		displayPhase(name)
	}
}

// Warn reports a non-fatal diagnostic. Tagged with the phase it occurred in
// since there is no source position to attach it to (spec §7/§9).
func Warn(phase, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	rep.m.Lock()
	rep.warnings = append(rep.warnings, fmt.Sprintf("[%s] %s", phase, msg))
	rep.m.Unlock()

	if level() >= LogLevelWarn {
		displayWarning(phase, msg)
	}
}

// Fatal reports a fatal error and halts the process. Every error in this
// front end is fatal: there is no recovery path (spec §7).
func Fatal(phase, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	if level() >= LogLevelError {
		displayFatal(phase, msg)
	}

	os.Exit(1)
}

// ICE reports an internal compiler error: a violated invariant that should
// never occur given well-formed input, as opposed to a user-facing mistake.
func ICE(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)

	if level() >= LogLevelError {
		displayICE(msg)
	}

	os.Exit(1)
}

// FlushWarnings prints the warnings accumulated during compilation again,
// as a closing summary. Warn has already displayed each one as it was
// reported (at warn level or above); this is called once compilation
// finishes.
func FlushWarnings() {
	rep.m.Lock()
	warnings := rep.warnings
	rep.m.Unlock()

	if level() < LogLevelWarn {
		return
	}

	for _, w := range warnings {
		fmt.Println(w)
	}
}
