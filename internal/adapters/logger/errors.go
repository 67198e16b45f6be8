package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/olymper/internal/ui/style"
)

// zerrLike matches the accessors of *zerr.Error.
type zerrLike interface {
	Message() string
	Metadata() map[string]any
}

// errorEntry is one link of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of err. Standard errors terminate the walk
// with their full text. Links with an empty message fold their metadata into the
// link above them.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	pending := map[string]any{}

	for current := err; current != nil; {
		z, ok := current.(zerrLike)
		if !ok {
			entry := errorEntry{message: current.Error()}
			if len(pending) > 0 {
				entry.metadata = pending
			}
			entries = append(entries, entry)
			break
		}

		meta := z.Metadata()
		if z.Message() == "" {
			target := pending
			if len(entries) > 0 {
				target = entries[len(entries)-1].metadata
			}
			maps.Copy(target, meta)
			current = errors.Unwrap(current)
			continue
		}

		if len(pending) > 0 {
			maps.Copy(meta, pending)
			pending = map[string]any{}
		}
		entries = append(entries, errorEntry{message: z.Message(), metadata: meta})
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as a headline followed by a "Caused by" list.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		text := strings.Split(entry.message, "\n")
		text[0] += formatMetadata(entry.metadata)

		if i == 0 {
			lines = append(lines, "Error: "+text[0])
			for _, line := range text[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    "+style.Arrow+" "+text[0])
		for _, line := range text[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any) string {
	if len(meta) == 0 {
		return ""
	}
	pairs := make([]string, 0, len(meta))
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, meta[key]))
	}
	return " [" + strings.Join(pairs, " ") + "]"
}
