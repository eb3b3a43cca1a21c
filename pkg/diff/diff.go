// Package diff reports line-level changes between two text documents.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const maxChangedLines = 50

// Changes lists the lines removed from before ("- " prefix) and added in
// after ("+ " prefix), in document order. Unchanged lines are omitted.
// It returns an empty string when the documents are identical.
func Changes(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []string
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		default:
			continue
		}
		for _, line := range splitLines(d.Text) {
			out = append(out, prefix+line)
		}
	}

	if len(out) > maxChangedLines {
		omitted := len(out) - maxChangedLines
		out = append(out[:maxChangedLines], fmt.Sprintf("... (%d more changed lines)", omitted))
	}
	return strings.Join(out, "\n")
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
