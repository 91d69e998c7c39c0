// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dates

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/check-certificate/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/check-certificate/src/internal/x509/sniff"
)

// DefaultTool is the external X.509 tool invoked when no other binary is configured.
const DefaultTool = "openssl"

// notAfterPrefix marks the output line carrying the expiration instant.
const notAfterPrefix = "notAfter="

// Extractor obtains the expiration instant of the certificate stored at path.
// The hint, when known, tells the implementation how the file is encoded.
type Extractor interface {
	ExtractExpiration(ctx context.Context, path string, hint sniff.Hint) (time.Time, error)
}

// RunFunc executes an external command and returns its captured stdout and
// stderr. Implementations must return a non-nil error when the command could
// not be started or exited non-zero.
type RunFunc func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// NoExpirationError reports that the external tool ran but its output yielded
// no usable notAfter field for the named file.
type NoExpirationError struct {
	// Path is the certificate file that was inspected.
	Path string
	// Err is the underlying parse error when a notAfter line was present
	// but its value did not match the certificate-time grammar.
	Err error
}

// Error implements the error interface.
func (e *NoExpirationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dates: invalid notAfter value in %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("dates: no notAfter field found in %s", e.Path)
}

// Unwrap returns the underlying parse error, if any.
func (e *NoExpirationError) Unwrap() error { return e.Err }

// ToolError reports that the external tool could not be started or exited
// with a failure status. Stderr carries the tool's diagnostic output verbatim.
type ToolError struct {
	// Path is the certificate file the tool was invoked on.
	Path string
	// Stderr is the tool's diagnostic output, if any.
	Stderr string
	// Err is the process-level failure (start error or non-zero exit).
	Err error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	msg := fmt.Sprintf("dates: tool invocation failed for %s: %v", e.Path, e.Err)
	if diag := strings.TrimSpace(e.Stderr); diag != "" {
		msg += ": " + diag
	}
	return msg
}

// Unwrap returns the process-level failure.
func (e *ToolError) Unwrap() error { return e.Err }

// OpenSSL extracts expiration instants by invoking an OpenSSL-compatible
// command-line tool. The zero value is not usable; construct with [NewOpenSSL].
type OpenSSL struct {
	// Tool is the binary name or path of the external X.509 tool.
	Tool string

	// Run executes the tool. It defaults to a real process invocation and
	// exists so tests can substitute a fake.
	Run RunFunc

	// CommandObserver, when set, receives the exact command line before each
	// invocation. Read-only observability for debug output; no behavioral effect.
	CommandObserver func(cmdline string)
}

// NewOpenSSL creates an extractor around the given tool binary.
// An empty tool falls back to [DefaultTool].
func NewOpenSSL(tool string) *OpenSSL {
	if tool == "" {
		tool = DefaultTool
	}
	return &OpenSSL{
		Tool: tool,
		Run:  runCommand,
	}
}

// ExtractExpiration invokes "<tool> x509 -noout -dates -in path", adding
// "-inform PEM|DER" when the hint is known, and parses the first notAfter=
// line of the tool's stdout into a UTC instant.
//
// There is no timeout on the invocation beyond ctx; a hung tool hangs the call.
func (o *OpenSSL) ExtractExpiration(ctx context.Context, path string, hint sniff.Hint) (time.Time, error) {
	args := []string{"x509", "-noout", "-dates", "-in", path}
	if hint != sniff.HintNone {
		args = append(args, "-inform", hint.String())
	}

	if o.CommandObserver != nil {
		o.CommandObserver(o.Tool + " " + strings.Join(args, " "))
	}

	run := o.Run
	if run == nil {
		run = runCommand
	}

	stdout, stderr, err := run(ctx, o.Tool, args...)
	if err != nil {
		return time.Time{}, &ToolError{Path: path, Stderr: string(stderr), Err: err}
	}

	scanner := bufio.NewScanner(bytes.NewReader(stdout))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, notAfterPrefix) {
			continue
		}

		instant, err := ParseCertTime(strings.TrimPrefix(line, notAfterPrefix))
		if err != nil {
			return time.Time{}, &NoExpirationError{Path: path, Err: err}
		}
		return instant, nil
	}

	return time.Time{}, &NoExpirationError{Path: path}
}

// runCommand is the default RunFunc. It captures stdout and stderr into
// pooled buffers and copies them out before the buffers are recycled.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	outBuf := gc.Default.Get()
	errBuf := gc.Default.Get()
	defer func() {
		outBuf.Reset()
		gc.Default.Put(outBuf)
		errBuf.Reset()
		gc.Default.Put(errBuf)
	}()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = outBuf
	cmd.Stderr = errBuf

	err := cmd.Run()

	// The pooled buffers are reused after Put; hand back copies.
	stdout := append([]byte(nil), outBuf.Bytes()...)
	stderr := append([]byte(nil), errBuf.Bytes()...)
	return stdout, stderr, err
}
