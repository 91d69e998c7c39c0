// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package audit

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/check-certificate/src/internal/x509/expiry"
)

// statusText maps a result to its summary label.
func statusText(r Result) string {
	switch {
	case r.Err != nil:
		return "error"
	case r.Verdict.Status == expiry.StatusExpired:
		return "expired"
	default:
		return "valid"
	}
}

// RenderTable renders the run summary as a formatted markdown table,
// one row per audited file plus the aggregate verdict.
func (s Summary) RenderTable() string {
	if len(s.Results) == 0 {
		return "No certificates checked"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Certificate", "Not After", "Remaining", "Status"})

	var rows [][]string
	for i, r := range s.Results {
		notAfter, remaining := "-", "-"
		if r.Err == nil {
			notAfter = r.Verdict.NotAfter.Format("2006-01-02 15:04:05 MST")
			if r.Verdict.Status == expiry.StatusValid {
				remaining = r.Verdict.RemainingText()
			}
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Path,
			notAfter,
			remaining,
			statusText(r),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// RenderJSON renders the run summary as indented JSON for external tools.
func (s Summary) RenderJSON() ([]byte, error) {
	type resultData struct {
		Path      string `json:"path"`
		Status    string `json:"status"`
		NotAfter  string `json:"notAfter,omitempty"`
		Remaining string `json:"remaining,omitempty"`
		Error     string `json:"error,omitempty"`
	}

	type summaryData struct {
		OK      bool         `json:"ok"`
		Checked int          `json:"checked"`
		Results []resultData `json:"results"`
	}

	data := summaryData{
		OK:      s.OK,
		Checked: len(s.Results),
		Results: make([]resultData, 0, len(s.Results)),
	}

	for _, r := range s.Results {
		rd := resultData{
			Path:   r.Path,
			Status: statusText(r),
		}
		if r.Err != nil {
			rd.Error = r.Err.Error()
		} else {
			rd.NotAfter = r.Verdict.NotAfter.Format(time.RFC3339)
			if r.Verdict.Status == expiry.StatusValid {
				rd.Remaining = r.Verdict.RemainingText()
			}
		}
		data.Results = append(data.Results, rd)
	}

	return json.MarshalIndent(data, "", "  ")
}
