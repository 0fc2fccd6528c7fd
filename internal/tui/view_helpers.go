// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

// renderPage frames a screen: title, divider, indented body, divider and
// the key hints. An empty body shows a single dash.
func renderPage(title, data, hotKeys string) string {
	body := "-"
	if strings.TrimSpace(data) != "" {
		body = data
	}

	lines := []string{titleStyle.Render(title), indent(uiDivider), ""}
	for _, line := range strings.Split(body, "\n") {
		lines = append(lines, indent(line))
	}
	lines = append(lines, "", indent(uiDivider))
	if strings.TrimSpace(hotKeys) != "" {
		lines = append(lines, indent(helpStyle.Render(hotKeys)))
	}
	lines = append(lines, helpStyle.Render(indent("ctrl+c: quit")))

	return strings.Join(lines, "\n")
}

func indent(s string) string {
	return "  " + s
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func maskSecret(v string) string {
	if v == "" {
		return "-"
	}
	return strings.Repeat("•", min(len([]rune(v)), 12))
}
