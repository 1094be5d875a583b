package pth

import (
	"path/filepath"
	"strings"
)

// SplitEntries splits source content into entries, one per line.
// Blank and whitespace-only lines are dropped; all other lines are kept
// verbatim apart from a trailing carriage return.
func SplitEntries(content string) []string {
	var entries []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}

// Transform produces the final entries: the given entries in order,
// followed by each workspace path joined under the workspace root. A
// non-empty prefix is path-joined in front of every resulting entry.
// Duplicates are passed through.
func Transform(entries []string, prefix string, ws *Workspace) []string {
	out := make([]string, 0, len(entries)+workspaceLen(ws))
	out = append(out, entries...)
	if ws != nil {
		for _, p := range ws.Paths {
			out = append(out, filepath.Join(ws.Root, p))
		}
	}

	if prefix != "" {
		for i, entry := range out {
			out[i] = filepath.Join(prefix, entry)
		}
	}
	return out
}

func workspaceLen(ws *Workspace) int {
	if ws == nil {
		return 0
	}
	return len(ws.Paths)
}
