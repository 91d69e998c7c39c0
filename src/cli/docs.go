// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the certificate date auditor.
// It implements a Cobra-based CLI that checks X.509 certificate files (optionally
// whole directory trees) for date validity via an external OpenSSL-compatible
// tool, with verbosity-gated reporting and optional markdown table or JSON
// run summaries. The package loads configuration, assembles the audit pipeline,
// and maps the aggregate verdict onto the process exit status.
package cli
