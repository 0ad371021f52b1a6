package narrative

import (
	"fmt"
	"html"
	"strconv"
)

// ScoreColor shades a block green in proportion to its score.
func ScoreColor(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return fmt.Sprintf("rgb(200, %d, 200)", int(score*255))
}

// Px formats a pixel offset with fixed precision so output stays byte-stable.
func Px(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// Deg formats an angle for css transforms.
func Deg(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Text escapes catalog text for embedding in markup.
func Text(s string) string {
	return html.EscapeString(s)
}

// StyleBlock wraps css in an inline style element.
func StyleBlock(css string) string {
	return "<style>" + css + "</style>"
}
