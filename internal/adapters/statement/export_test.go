package statement

var (
	RenderLine = renderLine
	RenderMath = renderMath
)
