// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package dates extracts the notAfter expiration instant from [X.509]
// certificate files by shelling out to an external OpenSSL-compatible tool
// ("<tool> x509 -noout -dates -in FILE") and parsing its output.
//
// The external invocation is modeled as the narrow [Extractor] capability so
// the audit pipeline can be tested against a fake without spawning processes.
// Failures are split into two recoverable kinds: [ToolError] when the tool
// could not be started or exited non-zero, and [NoExpirationError] when the
// tool ran but produced no usable notAfter field.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
package dates
