package logger

// ErrorEntry mirrors errorEntry for black-box tests.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// CollectErrorEntries exposes collectErrorEntries.
func CollectErrorEntries(err error) []ErrorEntry {
	raw := collectErrorEntries(err)
	if raw == nil {
		return nil
	}
	out := make([]ErrorEntry, len(raw))
	for i, e := range raw {
		out[i] = ErrorEntry{Message: e.message, Metadata: e.metadata}
	}
	return out
}

// FormatError exposes the chain formatter.
func FormatError(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}
