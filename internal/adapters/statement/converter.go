// Package statement converts TeX problem statements to the contest's XML format.
package statement

import (
	"bufio"
	_ "embed"
	"html"
	"io"
	"strings"
	"text/template"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed statement.xml.tmpl
var statementTemplate string

var xmlTemplate = template.Must(template.New("statement").Parse(statementTemplate))

const (
	beginProblem = `\begin{problem}`
	endProblem   = `\end{problem}`
	noteBreak    = "\n<br /><br />\n"
)

// part names the section of the problem environment a line belongs to.
type part int

const (
	partDescription part = iota
	partInput
	partOutput
	partExamples
	partExplanations
	partNote
	partCount
)

var partMarkers = map[string]part{
	`\None`:         partDescription,
	`\InputFile`:    partInput,
	`\OutputFile`:   partOutput,
	`\Examples`:     partExamples,
	`\Explanations`: partExplanations,
	`\Note`:         partNote,
}

// document is the data rendered into the XML template.
type document struct {
	Package      string
	Title        string
	Description  string
	InputFormat  string
	OutputFormat string
	Notes        string
	Source       string
	PDFLink      string
	Examples     []example
}

var _ ports.StatementConverter = (*Converter)(nil)

// Converter implements ports.StatementConverter.
type Converter struct{}

// NewConverter creates a Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Convert reads the first problem environment from r and writes its XML form to w.
// The environment's own title wins over meta.Title.
func (c *Converter) Convert(r io.Reader, w io.Writer, meta domain.StatementMeta) error {
	title, parts, err := readProblem(r)
	if err != nil {
		return err
	}
	if title == "" {
		title = meta.Title
	}

	doc := document{
		Package:  meta.Package,
		Title:    title,
		Source:   meta.Source,
		PDFLink:  meta.PDFLink,
		Examples: parseExamples(parts[partExamples]),
	}

	rendered := make([]string, partCount)
	for p, lines := range parts {
		if part(p) == partExamples {
			continue
		}
		if rendered[p], err = renderPart(lines); err != nil {
			return err
		}
	}
	doc.Description = rendered[partDescription]
	doc.InputFormat = rendered[partInput]
	doc.OutputFormat = rendered[partOutput]

	doc.Notes = rendered[partNote]
	if explanations := rendered[partExplanations]; explanations != "" {
		if doc.Notes != "" {
			doc.Notes = explanations + noteBreak + doc.Notes
		} else {
			doc.Notes = explanations
		}
	}

	return render(w, doc)
}

// BuildPlain writes a statement whose description is text. The text is escaped.
func (c *Converter) BuildPlain(w io.Writer, text string, meta domain.StatementMeta) error {
	lines := strings.Split(html.EscapeString(strings.TrimSpace(text)), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = paragraphBreak
		}
	}
	return render(w, document{
		Package:     meta.Package,
		Title:       meta.Title,
		Source:      meta.Source,
		PDFLink:     meta.PDFLink,
		Description: strings.Join(lines, "\n"),
	})
}

func render(w io.Writer, doc document) error {
	if err := xmlTemplate.Execute(w, doc); err != nil {
		return zerr.Wrap(err, "failed to write statement")
	}
	return nil
}

// readProblem scans to the problem environment and splits its body into parts.
// Lines are trimmed.
func readProblem(r io.Reader) (string, [][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var title string
	found := false
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, beginProblem) {
			title = problemTitle(line)
			found = true
			break
		}
	}
	if err := sc.Err(); err != nil {
		return "", nil, zerr.Wrap(err, "failed to read statement")
	}
	if !found {
		return "", nil, zerr.Wrap(domain.ErrStatementNotFound, "failed to find problem environment")
	}

	parts := make([][]string, partCount)
	current := partDescription
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(sc.Text(), endProblem) {
			return title, parts, nil
		}
		if p, ok := partMarkers[line]; ok {
			current = p
			continue
		}
		parts[current] = append(parts[current], line)
	}
	if err := sc.Err(); err != nil {
		return "", nil, zerr.Wrap(err, "failed to read statement")
	}
	return "", nil, zerr.Wrap(domain.ErrStatementSyntax, `missing \end{problem}`)
}

// problemTitle extracts the first argument of \begin{problem}{Title}{...}.
func problemTitle(line string) string {
	rest := strings.TrimPrefix(line, beginProblem)
	content, _, ok := braced(rest)
	if !ok || !strings.HasPrefix(strings.TrimSpace(rest), "{") {
		return ""
	}
	return strings.TrimSpace(content)
}
