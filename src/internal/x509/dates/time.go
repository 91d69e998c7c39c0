// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dates

import (
	"fmt"
	"strings"
	"time"
)

// Certificate-time grammar as printed by OpenSSL under the C locale,
// e.g. "Feb 16 08:41:04 2026 GMT" or "Feb  6 08:41:04 2026 GMT".
// The zone suffix is GMT when present; some builds omit it entirely.
var certTimeLayouts = []string{
	"Jan _2 15:04:05 2006 MST",
	"Jan _2 15:04:05 2006",
}

// ParseCertTime converts a certificate-time string (the value of a notAfter=
// line) into an absolute UTC instant. The input is always GMT or locale-fixed
// "C", so the result carries no timezone ambiguity.
func ParseCertTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range certTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("dates: unrecognized certificate time %q", value)
}
