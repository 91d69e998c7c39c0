// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package expiry classifies a certificate expiration instant against the
// current time into a validity verdict and renders the remaining (or elapsed)
// time for human consumption.
package expiry
