// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package audit

import (
	"time"

	"github.com/H0llyW00dzZ/check-certificate/src/logger"
)

// Level is the ordered output verbosity, set once from CLI flags.
type Level int

const (
	// LevelQuiet suppresses everything except failures.
	LevelQuiet Level = iota
	// LevelDefault shows per-file verdicts and skipped directories.
	LevelDefault
	// LevelVerbose additionally shows the notAfter instant per file.
	LevelVerbose
	// LevelDebug additionally shows each invoked external command.
	LevelDebug
)

// Reporter writes verdict and diagnostic lines gated by a verbosity level.
// It keeps no state between events.
type Reporter struct {
	level Level
	log   logger.Logger
}

// NewReporter creates a reporter writing to log at the given level.
func NewReporter(level Level, log logger.Logger) *Reporter {
	return &Reporter{level: level, log: log}
}

// Valid reports a certificate that is still valid, with its remaining time.
// Shown at default verbosity and above.
func (r *Reporter) Valid(path, remaining string) {
	if r.level >= LevelDefault {
		r.log.Printf("[+] %s will expire in %s", path, remaining)
	}
}

// Expired reports an expired certificate. Always shown; quiet mode only
// suppresses non-failure noise.
func (r *Reporter) Expired(path, since string) {
	r.log.Printf("[-] %s has expired since %s", path, since)
}

// Failed reports a per-file processing error. Always shown.
func (r *Reporter) Failed(err error) {
	r.log.Printf("[-] %v", err)
}

// SkippedDir reports a directory argument skipped because recursive mode is
// off. Shown at default verbosity and above; never a failure.
func (r *Reporter) SkippedDir(path string) {
	if r.level >= LevelDefault {
		r.log.Printf("[ ] %s is a directory, skipping (use --recursive to descend)", path)
	}
}

// NotAfter reports the raw expiration instant of a file. Verbose and above.
func (r *Reporter) NotAfter(path string, instant time.Time) {
	if r.level >= LevelVerbose {
		r.log.Printf("[ ] %s: not after %s", path, instant.Format("2006-01-02 15:04:05 MST"))
	}
}

// Command reports the exact external command line about to run. Debug only.
func (r *Reporter) Command(cmdline string) {
	if r.level >= LevelDebug {
		r.log.Printf("[*] exec: %s", cmdline)
	}
}
