package view

import (
	"fmt"
	"strings"
)

const (
	dialSize   = 200
	dialCenter = 100
	dialRadius = 90

	accentColor  = "#e4572e"
	neutralColor = "#9aa0a6"
	faceColor    = "#1c1f24"
	pointerColor = "#f0f3f7"
)

// DialSVG draws the compass gauge: 36 tick marks at 10 degree steps with the
// four cardinal marks drawn long and accented, a rotating face and a pointer.
// The face counter-rotates by the heading while the pointer rotates with it,
// so the pointer reads against a world-fixed rose (rotating-bezel convention).
func DialSVG(heading float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, dialSize, dialSize)
	fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="%d" fill="%s"/>`, dialCenter, dialCenter, dialRadius, faceColor)

	fmt.Fprintf(&b, `<g transform="rotate(%.1f %d %d)">`, -heading, dialCenter, dialCenter)
	for i := 0; i < 36; i++ {
		angle := i * 10
		length, color := 8, neutralColor
		if angle%90 == 0 {
			length, color = 18, accentColor
		}
		fmt.Fprintf(&b,
			`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" transform="rotate(%d %d %d)"/>`,
			dialCenter, dialCenter-dialRadius+2,
			dialCenter, dialCenter-dialRadius+2+length,
			color, angle, dialCenter, dialCenter)
	}
	b.WriteString(`</g>`)

	fmt.Fprintf(&b, `<g transform="rotate(%.1f %d %d)"><polygon points="100,22 93,40 107,40" fill="%s"/></g>`,
		heading, dialCenter, dialCenter, pointerColor)
	fmt.Fprintf(&b, `<circle cx="%d" cy="%d" r="4" fill="%s"/>`, dialCenter, dialCenter, pointerColor)

	b.WriteString(`</svg>`)
	return b.String()
}
