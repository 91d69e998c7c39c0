// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package expiry

import (
	"fmt"
	"time"
)

// dayPrecisionThreshold is the whole-day count above which the remaining
// time is rendered as a day count instead of an exact duration. Presentation
// policy only; it never affects the verdict.
const dayPrecisionThreshold = 2

// Status is the validity outcome for a single certificate.
type Status int

const (
	// StatusValid means the expiration instant lies in the future.
	StatusValid Status = iota
	// StatusExpired means the expiration instant has passed (or is now).
	StatusExpired
)

// String returns a short label for the status.
func (s Status) String() string {
	if s == StatusExpired {
		return "expired"
	}
	return "valid"
}

// Verdict is the classification of one certificate at one evaluation instant.
// It is derived, never persisted; every run recomputes it against the clock.
type Verdict struct {
	// Status is the pass/fail outcome.
	Status Status
	// NotAfter is the certificate's expiration instant (UTC).
	NotAfter time.Time
	// Remaining is NotAfter minus the evaluation instant. Negative once expired.
	Remaining time.Duration
}

// Classify compares the expiration instant against now.
// A strictly positive remaining duration is valid; zero or negative is expired.
func Classify(notAfter, now time.Time) Verdict {
	v := Verdict{
		NotAfter:  notAfter.UTC(),
		Remaining: notAfter.Sub(now),
	}
	if v.Remaining > 0 {
		v.Status = StatusValid
	} else {
		v.Status = StatusExpired
	}
	return v
}

// RemainingText renders the remaining time of a valid verdict: a whole-day
// count when more than two full days remain, otherwise the exact duration
// truncated to seconds. For an expired verdict it renders the expiration
// instant, suitable for an "expired since" message.
func (v Verdict) RemainingText() string {
	if v.Status == StatusExpired {
		return v.NotAfter.Format("2006-01-02 15:04:05 MST")
	}

	if days := int(v.Remaining.Hours() / 24); days > dayPrecisionThreshold {
		return fmt.Sprintf("%d days", days)
	}
	return v.Remaining.Truncate(time.Second).String()
}
