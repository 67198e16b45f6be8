package statement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/olymper/internal/adapters/statement"
)

func TestRenderLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"a~b", "a&nbsp;b"},
		{"1--2", "1&ndash;2"},
		{"yes --- no", "yes &mdash; no"},
		{"x < y > z", "x &lt; y &gt; z"},
		{"<<quoted>>", "&laquo;quoted&raquo;"},
		{`\t{int}`, `<tt style="font-size:12px">int</tt>`},
		{`\w{YES}`, `<tt style="font-size:12px">&ldquo;YES&rdquo;</tt>`},
		{`$n$ numbers`, "<i>n</i> numbers"},
		{"cost is 5$", "cost is 5$"},
		{"-1", "-1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statement.RenderLine(tt.in), tt.in)
	}
}

func TestRenderMath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"n", "n"},
		{"a_i", "a<sub>i</sub>"},
		{"2^{n+1}", "2<sup>n&thinsp;+&thinsp;1</sup>"},
		{"a - b", "a&thinsp;&minus;&thinsp;b"},
		{`a \cdot b`, "a&thinsp;&#8901;&thinsp;b"},
		{`1 \le n`, "1 &le; n"},
		{`a_1, \ldots, a_n`, "a<sub>1</sub>, &hellip;, a<sub>n</sub>"},
		{`\alpha`, "&alpha;"},
		{`\{x\}`, "{x}"},
		{"x < y", "x &lt; y"},
		{"x^", "x^"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statement.RenderMath(tt.in), tt.in)
	}
}
