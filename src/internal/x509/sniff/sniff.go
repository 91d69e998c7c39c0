// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package sniff

import (
	"errors"
	"io"
	"os"
)

// Hint is the encoding hint derived from a certificate file's leading byte.
type Hint int

const (
	// HintNone means the leading byte matched neither known encoding;
	// format detection is delegated to the external tool.
	HintNone Hint = iota
	// HintPEM means the file starts with '-' (0x2D), the first byte of a
	// "-----BEGIN CERTIFICATE-----" envelope.
	HintPEM
	// HintDER means the file starts with 0x30, the ASN.1 SEQUENCE tag that
	// opens every DER-encoded certificate.
	HintDER
)

// String returns the hint name as passed to the tool's -inform flag.
func (h Hint) String() string {
	switch h {
	case HintPEM:
		return "PEM"
	case HintDER:
		return "DER"
	default:
		return ""
	}
}

// Detect returns the encoding hint for the first byte read from r.
// A reader with no data yields [HintNone].
func Detect(r io.Reader) (Hint, error) {
	var lead [1]byte
	if _, err := io.ReadFull(r, lead[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return HintNone, nil
		}
		return HintNone, err
	}

	switch lead[0] {
	case '-':
		return HintPEM, nil
	case 0x30: // ASN.1 SEQUENCE tag; also ASCII '0'
		return HintDER, nil
	default:
		return HintNone, nil
	}
}

// DetectFile opens path, sniffs its leading byte, and closes the file
// before returning. Only a single byte is ever read.
func DetectFile(path string) (Hint, error) {
	f, err := os.Open(path)
	if err != nil {
		return HintNone, err
	}
	defer f.Close()

	return Detect(f)
}
