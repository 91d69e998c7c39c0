// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package audit drives the certificate date audit: it resolves the CLI's
// file and directory arguments, runs the per-file pipeline (encoding sniff,
// notAfter extraction, expiry classification), reports each outcome through
// a verbosity-gated reporter, and folds everything into a single pass/fail
// summary.
//
// Processing is strictly sequential in traversal order. A failure on one
// file marks the aggregate as failed but never aborts the rest of the batch.
package audit
