// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// renderSummary renders item/value rows as a markdown table.
func renderSummary(rows [][]string) (string, error) {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Item", "Value"})

	if err := table.Bulk(rows); err != nil {
		return "", fmt.Errorf("failed to build summary table: %w", err)
	}
	if err := table.Render(); err != nil {
		return "", fmt.Errorf("failed to render summary table: %w", err)
	}
	return buf.String(), nil
}
