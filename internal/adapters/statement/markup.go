package statement

import (
	"strings"
	"unicode"

	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	paragraphBreak = "<br />"
	itemOpen       = `<li style="font-size:12px;">`
	monoOpen       = `<tt style="font-size:12px">`
)

// renderPart converts the lines of one statement part into HTML.
func renderPart(lines []string) (string, error) {
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var out []string
	inList := false
	for _, line := range lines {
		switch {
		case line == "":
			out = append(out, paragraphBreak)
		case line == `\begin{itemize}`:
			inList = true
			out = append(out, "<ul>")
		case strings.HasPrefix(line, `\item`):
			if !inList {
				return "", zerr.With(zerr.Wrap(domain.ErrStatementSyntax, `unexpected \item outside itemize`), "line", line)
			}
			out = append(out, itemOpen, renderLine(strings.TrimSpace(line[len(`\item`):])), "</li>")
		case line == `\end{itemize}`:
			inList = false
			out = append(out, "</ul>")
		case line[0] == '%':
			continue
		default:
			out = append(out, renderLine(line))
		}
	}
	return strings.Join(out, "\n"), nil
}

// renderLine converts inline markup: math, monospace, dashes, quotes and
// angle brackets.
func renderLine(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); {
		rest := line[i:]
		switch {
		case rest[0] == '$':
			end := strings.IndexByte(rest[1:], '$')
			if end <= 0 {
				b.WriteByte('$')
				i++
				continue
			}
			b.WriteString("<i>" + renderMath(rest[1:1+end]) + "</i>")
			i += end + 2
		case rest[0] == '~':
			b.WriteString("&nbsp;")
			i++
		case strings.HasPrefix(rest, "---"):
			b.WriteString("&mdash;")
			i += 3
		case strings.HasPrefix(rest, "--"):
			b.WriteString("&ndash;")
			i += 2
		case strings.HasPrefix(rest, `\t{`), strings.HasPrefix(rest, `\w{`):
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				b.WriteString(rest)
				return b.String()
			}
			inner := renderLine(rest[3:end])
			if rest[1] == 'w' {
				inner = "&ldquo;" + inner + "&rdquo;"
			}
			b.WriteString(monoOpen + inner + "</tt>")
			i += end + 1
		case strings.HasPrefix(rest, "<<"):
			b.WriteString("&laquo;")
			i += 2
		case strings.HasPrefix(rest, ">>"):
			b.WriteString("&raquo;")
			i += 2
		case rest[0] == '<':
			b.WriteString("&lt;")
			i++
		case rest[0] == '>':
			b.WriteString("&gt;")
			i++
		default:
			b.WriteByte(rest[0])
			i++
		}
	}
	return b.String()
}

var mathEntities = map[string]string{
	"<":       "&lt;",
	">":       "&gt;",
	`\le`:     "&le;",
	`\leq`:    "&le;",
	`\ge`:     "&ge;",
	`\geq`:    "&ge;",
	`\ldots`:  "&hellip;",
	`\cdot`:   "&thinsp;&#8901;&thinsp;",
	"-":       "&thinsp;&minus;&thinsp;",
	"+":       "&thinsp;+&thinsp;",
	`\times`:  "&times;",
	`\neq`:    "&ne;",
	`\ne`:     "&ne;",
	`\infty`:  "&infin;",
	`\dots`:   "&hellip;",
	`\cdots`:  "&#8943;",
	`\pm`:     "&plusmn;",
	`\approx`: "&asymp;",
}

// renderMath converts the body of an inline formula.
// Unknown commands become entities of the same name.
func renderMath(src string) string {
	rs := []rune(src)
	var b strings.Builder
	for i := 0; i < len(rs); {
		r := rs[i]
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
			i++

		case (r == '^' || r == '_') && i+1 < len(rs):
			var inner string
			next := i + 2
			if rs[i+1] == '{' {
				end := matchBrace(rs, i+1)
				inner = renderMath(string(rs[i+2 : end]))
				next = end + 1
			} else {
				inner = string(rs[i+1])
			}
			tag := "sup"
			if r == '_' {
				tag = "sub"
			}
			b.WriteString("<" + tag + ">" + inner + "</" + tag + ">")
			i = next

		case r == '\\' && i+1 < len(rs) && (rs[i+1] == '{' || rs[i+1] == '}'):
			b.WriteRune(rs[i+1])
			i += 2

		case r == '\\':
			end := i + 1
			for end < len(rs) && !unicode.IsSpace(rs[end]) && !strings.ContainsRune(".,;", rs[end]) {
				end++
			}
			cmd := string(rs[i:end])
			spaced := cmd == `\cdot`
			if spaced {
				trimTrailingSpace(&b)
			}
			if e, ok := mathEntities[cmd]; ok {
				b.WriteString(e)
			} else {
				b.WriteString("&" + cmd[1:] + ";")
			}
			if spaced && end < len(rs) && rs[end] == ' ' {
				end++
			}
			i = end

		case r == '-' || r == '+':
			trimTrailingSpace(&b)
			b.WriteString(mathEntities[string(r)])
			i++
			if i < len(rs) && rs[i] == ' ' {
				i++
			}

		case r == '<' || r == '>':
			b.WriteString(mathEntities[string(r)])
			i++

		default:
			b.WriteRune(r)
			i++
		}
	}
	return b.String()
}

// matchBrace returns the index of the brace closing the one at open,
// or len(rs) when it is unbalanced.
func matchBrace(rs []rune, open int) int {
	depth := 0
	for i := open; i < len(rs); i++ {
		switch rs[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(rs)
}

func trimTrailingSpace(b *strings.Builder) {
	s := b.String()
	if strings.HasSuffix(s, " ") {
		b.Reset()
		b.WriteString(s[:len(s)-1])
	}
}

// example is one sample test shown in the statement.
type example struct {
	Input  string
	Output string
}

// parseExamples collects every \exmp{input}{output} pair.
// Example bodies may not contain braces.
func parseExamples(lines []string) []example {
	text := strings.Join(lines, "\n")
	var out []example
	for {
		at := strings.Index(text, `\exmp`)
		if at < 0 {
			return out
		}
		text = text[at+len(`\exmp`):]

		in, rest, ok := braced(text)
		if !ok {
			return out
		}
		ans, rest, ok := braced(rest)
		if !ok {
			return out
		}
		out = append(out, example{Input: strings.TrimSpace(in), Output: strings.TrimSpace(ans)})
		text = rest
	}
}

// braced returns the content of the next {...} group and the text after it.
func braced(s string) (content, rest string, ok bool) {
	open := strings.IndexByte(s, '{')
	if open < 0 {
		return "", "", false
	}
	end := strings.IndexByte(s[open+1:], '}')
	if end < 0 {
		return "", "", false
	}
	return s[open+1 : open+1+end], s[open+1+end+1:], true
}
