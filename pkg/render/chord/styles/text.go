package styles

import (
	"bytes"
	"encoding/xml"
	"unicode/utf8"
)

// NodeFontSize shrinks the label font so long labels stay inside the ring.
func NodeFontSize(n Node) float64 {
	chars := max(1, utf8.RuneCountInString(n.Label))
	fit := (2 * n.R * 0.85) / (float64(chars) * 0.55)
	return max(7, min(nodeFontSize, fit))
}

// LabelBox returns the width and height of the background rect behind a
// value label.
func LabelBox(label string) (w, h float64) {
	chars := utf8.RuneCountInString(label)
	return float64(chars)*valueFontSize*valueCharWidth + 2*valuePadding, valueFontSize + 2*valuePadding
}

func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
