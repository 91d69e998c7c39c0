// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package dates_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/check-certificate/src/internal/x509/dates"
	"github.com/H0llyW00dzZ/check-certificate/src/internal/x509/sniff"
)

// fakeRun returns a RunFunc that records the invoked command line and
// replies with canned output.
func fakeRun(calls *[][]string, stdout, stderr string, err error) dates.RunFunc {
	return func(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
		if calls != nil {
			*calls = append(*calls, append([]string{name}, args...))
		}
		return []byte(stdout), []byte(stderr), err
	}
}

func TestExtractExpiration(t *testing.T) {
	wantInstant := time.Date(2026, time.February, 16, 8, 41, 4, 0, time.UTC)

	tests := []struct {
		name   string
		stdout string
		hint   sniff.Hint
	}{
		{
			name:   "notAfter with notBefore noise",
			stdout: "notBefore=Nov 24 08:41:05 2025 GMT\nnotAfter=Feb 16 08:41:04 2026 GMT\n",
			hint:   sniff.HintPEM,
		},
		{
			name:   "notAfter only",
			stdout: "notAfter=Feb 16 08:41:04 2026 GMT\n",
			hint:   sniff.HintNone,
		},
		{
			name:   "notAfter without zone suffix",
			stdout: "notAfter=Feb 16 08:41:04 2026\n",
			hint:   sniff.HintDER,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor := dates.NewOpenSSL("")
			extractor.Run = fakeRun(nil, tt.stdout, "", nil)

			instant, err := extractor.ExtractExpiration(context.Background(), "server.pem", tt.hint)
			require.NoError(t, err, "ExtractExpiration() error")

			assert.True(t, instant.Equal(wantInstant), "expected %v, got %v", wantInstant, instant)
		})
	}
}

func TestExtractExpiration_CommandLine(t *testing.T) {
	tests := []struct {
		name     string
		hint     sniff.Hint
		expected []string
	}{
		{
			name:     "PEM hint adds -inform PEM",
			hint:     sniff.HintPEM,
			expected: []string{"openssl", "x509", "-noout", "-dates", "-in", "cert.pem", "-inform", "PEM"},
		},
		{
			name:     "DER hint adds -inform DER",
			hint:     sniff.HintDER,
			expected: []string{"openssl", "x509", "-noout", "-dates", "-in", "cert.pem", "-inform", "DER"},
		},
		{
			name:     "no hint leaves detection to the tool",
			hint:     sniff.HintNone,
			expected: []string{"openssl", "x509", "-noout", "-dates", "-in", "cert.pem"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls [][]string
			extractor := dates.NewOpenSSL("openssl")
			extractor.Run = fakeRun(&calls, "notAfter=Feb 16 08:41:04 2026 GMT\n", "", nil)

			_, err := extractor.ExtractExpiration(context.Background(), "cert.pem", tt.hint)
			require.NoError(t, err)

			require.Len(t, calls, 1, "expected exactly one tool invocation")
			assert.Equal(t, tt.expected, calls[0], "unexpected command line")
		})
	}
}

func TestExtractExpiration_CommandObserver(t *testing.T) {
	var observed string
	extractor := dates.NewOpenSSL("/usr/local/bin/openssl")
	extractor.Run = fakeRun(nil, "notAfter=Feb 16 08:41:04 2026 GMT\n", "", nil)
	extractor.CommandObserver = func(cmdline string) { observed = cmdline }

	_, err := extractor.ExtractExpiration(context.Background(), "cert.der", sniff.HintDER)
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/openssl x509 -noout -dates -in cert.der -inform DER", observed)
}

func TestExtractExpiration_NoExpirationField(t *testing.T) {
	extractor := dates.NewOpenSSL("")
	extractor.Run = fakeRun(nil, "notBefore=Nov 24 08:41:05 2025 GMT\n", "", nil)

	_, err := extractor.ExtractExpiration(context.Background(), "weird.pem", sniff.HintNone)
	require.Error(t, err, "expected error when notAfter is absent")

	var noExp *dates.NoExpirationError
	require.ErrorAs(t, err, &noExp, "expected NoExpirationError")
	assert.Equal(t, "weird.pem", noExp.Path)
	assert.Contains(t, err.Error(), "no notAfter field found in weird.pem")
}

func TestExtractExpiration_MalformedValue(t *testing.T) {
	extractor := dates.NewOpenSSL("")
	extractor.Run = fakeRun(nil, "notAfter=sometime next year\n", "", nil)

	_, err := extractor.ExtractExpiration(context.Background(), "bad.pem", sniff.HintNone)

	var noExp *dates.NoExpirationError
	require.ErrorAs(t, err, &noExp, "expected NoExpirationError for malformed value")
	assert.Error(t, noExp.Err, "expected wrapped parse error")
}

func TestExtractExpiration_ToolFailure(t *testing.T) {
	exitErr := errors.New("exit status 1")
	extractor := dates.NewOpenSSL("")
	extractor.Run = fakeRun(nil, "", "unable to load certificate\n", exitErr)

	_, err := extractor.ExtractExpiration(context.Background(), "broken.pem", sniff.HintPEM)

	var toolErr *dates.ToolError
	require.ErrorAs(t, err, &toolErr, "expected ToolError")
	assert.Equal(t, "broken.pem", toolErr.Path)
	assert.Contains(t, toolErr.Stderr, "unable to load certificate")
	assert.ErrorIs(t, err, exitErr, "expected wrapped process error")
	assert.Contains(t, err.Error(), "unable to load certificate", "diagnostic output should surface verbatim")
}

func TestParseCertTime(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "GMT suffix",
			value:    "Feb 16 08:41:04 2026 GMT",
			expected: time.Date(2026, time.February, 16, 8, 41, 4, 0, time.UTC),
		},
		{
			name:     "space padded day",
			value:    "Feb  6 08:41:04 2026 GMT",
			expected: time.Date(2026, time.February, 6, 8, 41, 4, 0, time.UTC),
		},
		{
			name:     "no zone suffix",
			value:    "Dec  1 00:00:00 2030",
			expected: time.Date(2030, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "surrounding whitespace",
			value:    "  Feb 16 08:41:04 2026 GMT  ",
			expected: time.Date(2026, time.February, 16, 8, 41, 4, 0, time.UTC),
		},
		{
			name:    "garbage",
			value:   "not a time",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			instant, err := dates.ParseCertTime(tt.value)
			if tt.wantErr {
				assert.Error(t, err, "expected parse error")
				return
			}

			require.NoError(t, err, "ParseCertTime() error")
			assert.True(t, instant.Equal(tt.expected), "expected %v, got %v", tt.expected, instant)
		})
	}
}
