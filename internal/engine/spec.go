package engine

import "strings"

// DefaultWindowTitle is the built-in fallback target used when no window
// titles are configured.
const DefaultWindowTitle = "CounterSide"

// TargetSpec is the resolved, immutable configuration for one supervision
// session: window titles and executable names, each trimmed, deduplicated
// case-insensitively, and kept in first-seen order.
type TargetSpec struct {
	WindowTitles []string
	ProcessNames []string
}

// NewTargetSpec normalizes both lists and falls back to DefaultWindowTitle
// when the normalized title list is empty, so a session always has at least
// one window-title target.
func NewTargetSpec(windowTitles, processNames []string) TargetSpec {
	titles := NormalizeList(windowTitles)
	if len(titles) == 0 {
		titles = []string{DefaultWindowTitle}
	}
	return TargetSpec{
		WindowTitles: titles,
		ProcessNames: NormalizeList(processNames),
	}
}

// IsEmpty reports whether the spec carries no targets at all.
func (s TargetSpec) IsEmpty() bool {
	return len(s.WindowTitles) == 0 && len(s.ProcessNames) == 0
}

// NormalizeList trims entries, drops empty ones, and deduplicates
// case-insensitively, keeping the first occurrence in input order.
func NormalizeList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var result []string
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
