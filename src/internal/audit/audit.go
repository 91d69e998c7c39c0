// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package audit

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/H0llyW00dzZ/check-certificate/src/internal/x509/dates"
	"github.com/H0llyW00dzZ/check-certificate/src/internal/x509/expiry"
	"github.com/H0llyW00dzZ/check-certificate/src/internal/x509/sniff"
)

// Options configures a single audit run.
type Options struct {
	// Recursive enables descending into directory arguments.
	Recursive bool

	// Now supplies the evaluation clock. Defaults to [time.Now];
	// tests substitute a fixed instant.
	Now func() time.Time
}

// Result is the outcome for one certificate file.
type Result struct {
	// Path is the audited file.
	Path string
	// Hint is the encoding hint derived from the file's leading byte.
	Hint sniff.Hint
	// Verdict is the expiry classification. Meaningful only when Err is nil.
	Verdict expiry.Verdict
	// Err is the per-file failure (sniff, tool invocation, or missing
	// notAfter field), nil on success.
	Err error
}

// OK reports whether this file passed: no processing error and not expired.
func (r Result) OK() bool {
	return r.Err == nil && r.Verdict.Status == expiry.StatusValid
}

// Summary aggregates an entire run.
type Summary struct {
	// Results holds one entry per audited file, in traversal order.
	// Skipped directories contribute no entry.
	Results []Result
	// OK is the logical AND over all per-file outcomes. Vacuously true
	// for an empty input set.
	OK bool
}

// Auditor walks the input paths and applies the per-file pipeline.
type Auditor struct {
	extractor dates.Extractor
	reporter  *Reporter
	opts      Options
}

// New creates an auditor around the given extractor and reporter.
func New(extractor dates.Extractor, reporter *Reporter, opts Options) *Auditor {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Auditor{
		extractor: extractor,
		reporter:  reporter,
		opts:      opts,
	}
}

// Run processes the path arguments in order and returns the aggregated
// summary. Per-file failures are reported and folded into the aggregate
// without aborting the batch; the returned error is non-nil only when the
// context is cancelled mid-run.
func (a *Auditor) Run(ctx context.Context, paths []string) (Summary, error) {
	summary := Summary{OK: true}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		info, err := os.Stat(path)
		if err != nil {
			summary.record(a.fail(path, fmt.Errorf("audit: cannot access %s: %w", path, err)))
			continue
		}

		if info.IsDir() {
			if !a.opts.Recursive {
				a.reporter.SkippedDir(path)
				continue
			}
			if err := a.walkDir(ctx, path, &summary); err != nil {
				return summary, err
			}
			continue
		}

		summary.record(a.checkFile(ctx, path))
	}

	return summary, nil
}

// walkDir applies the per-file pipeline to every regular file below root,
// each exactly once. Symlinks are not followed.
func (a *Auditor) walkDir(ctx context.Context, root string, summary *Summary) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			summary.record(a.fail(path, fmt.Errorf("audit: cannot access %s: %w", path, err)))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		summary.record(a.checkFile(ctx, path))
		return nil
	})
}

// checkFile runs sniff, extraction, and classification for a single file.
func (a *Auditor) checkFile(ctx context.Context, path string) Result {
	hint, err := sniff.DetectFile(path)
	if err != nil {
		return a.fail(path, fmt.Errorf("audit: cannot sniff %s: %w", path, err))
	}

	notAfter, err := a.extractor.ExtractExpiration(ctx, path, hint)
	if err != nil {
		return a.fail(path, err)
	}

	a.reporter.NotAfter(path, notAfter)

	verdict := expiry.Classify(notAfter, a.opts.Now())
	switch verdict.Status {
	case expiry.StatusExpired:
		a.reporter.Expired(path, verdict.RemainingText())
	default:
		a.reporter.Valid(path, verdict.RemainingText())
	}

	return Result{Path: path, Hint: hint, Verdict: verdict}
}

// fail reports a per-file error and wraps it into a Result.
func (a *Auditor) fail(path string, err error) Result {
	a.reporter.Failed(err)
	return Result{Path: path, Err: err}
}

// record appends a result and folds it into the aggregate.
func (s *Summary) record(r Result) {
	s.Results = append(s.Results, r)
	if !r.OK() {
		s.OK = false
	}
}
