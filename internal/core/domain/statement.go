package domain

// StatementMeta are the problem attributes embedded in a converted statement.
type StatementMeta struct {
	// Package is the problem's system name.
	Package string
	Title   string
	Source  string
	PDFLink string
}
