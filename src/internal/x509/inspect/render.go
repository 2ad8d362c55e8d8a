// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509inspect

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// timeLayout is the display format for validity timestamps.
const timeLayout = "2006-01-02 15:04:05 MST"

// Render returns the details as plain indented text lines, the default
// output of certificate inspection.
func (d *Details) Render() string {
	var result strings.Builder

	fmt.Fprintf(&result, "  Subject: %s\n", d.Subject)
	fmt.Fprintf(&result, "  Issuer:  %s\n", d.Issuer)
	fmt.Fprintf(&result, "  Serial:  %s\n", d.SerialNumber)
	fmt.Fprintf(&result, "  Valid from:  %s\n", d.NotBefore.Format(timeLayout))
	fmt.Fprintf(&result, "  Valid until: %s\n", d.NotAfter.Format(timeLayout))

	if len(d.DNSNames) > 0 {
		fmt.Fprintf(&result, "  DNS SANs: %s\n", strings.Join(d.DNSNames, ", "))
	}
	if len(d.IPAddresses) > 0 {
		fmt.Fprintf(&result, "  IP SANs:  %s\n", strings.Join(d.IPAddresses, ", "))
	}

	return result.String()
}

// RenderTable returns the details as a formatted markdown table using
// tablewriter.
func (d *Details) RenderTable() string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"Field", "Value"})

	rows := [][]string{
		{"Subject", d.Subject},
		{"Issuer", d.Issuer},
		{"Serial", d.SerialNumber},
		{"Valid From", d.NotBefore.Format(timeLayout)},
		{"Valid Until", d.NotAfter.Format(timeLayout)},
	}
	if len(d.DNSNames) > 0 {
		rows = append(rows, []string{"DNS SANs", strings.Join(d.DNSNames, ", ")})
	}
	if len(d.IPAddresses) > 0 {
		rows = append(rows, []string{"IP SANs", strings.Join(d.IPAddresses, ", ")})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
