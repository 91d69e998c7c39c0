// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// check-certificate is a command-line tool for auditing X.509 certificate
// files for date validity. It delegates certificate parsing to an external
// OpenSSL-compatible tool and aggregates a single pass/fail verdict across
// the whole input set.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/check-certificate/cmd/check-certificate@latest
//
// # Usage
//
//	check-certificate [flags] CERTFILE_OR_DIR...
//
// # Flags
//
//	-q, --quiet      Suppress non-failure output
//	-r, --recursive  Descend into directory arguments
//	-v, --verbose    Show the notAfter instant per file
//	-d, --debug      Also show each invoked external command (implies --verbose)
//	-t, --tool       OpenSSL-compatible binary to invoke (default: openssl)
//	    --config     Configuration file (JSON or YAML)
//	    --table      Render a markdown summary table after the run
//	    --json       Emit the run summary as JSON on stdout
//
// # Exit status
//
// 0 when every checked file is valid (an empty input set is vacuously valid),
// 1 when any file has expired or could not be checked.
//
// # Examples
//
// Check a single certificate:
//
//	check-certificate server.pem
//
// Check a whole directory tree quietly; only failures are printed:
//
//	check-certificate -q -r /etc/ssl/certs
//
// Produce a machine-readable summary:
//
//	check-certificate --json server.pem > report.json
//
// Retrieve a certificate from an HTTPS webserver for checking:
//
//	openssl s_client -showcerts -servername www.example.com \
//	  -connect www.example.com:443 < /dev/null | \
//	  sed -ne '/-BEGIN CERTIFICATE-/,/-END CERTIFICATE-/p' > www.pem
package main
