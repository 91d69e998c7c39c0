// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sniff picks an encoding hint for an [X.509] certificate file by
// looking at its leading byte, so the external OpenSSL invocation can be
// told -inform PEM or -inform DER up front instead of guessing.
//
// The sniff is deliberately shallow: a PEM envelope always starts with the
// dash of "-----BEGIN CERTIFICATE-----" (0x2D), and a DER certificate always
// starts with the ASN.1 SEQUENCE tag (0x30). Anything else yields no hint
// and format detection is left to the tool itself.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
package sniff
