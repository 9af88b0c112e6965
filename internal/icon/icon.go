// Package icon turns a current-conditions icon code into a complete SVG
// document. Rendering is a total function over the code set: unknown codes
// still produce a valid document with the cloud overlay and attribution.
package icon

import "strings"

type layers struct {
	base      []string
	withCloud bool
	shifted   bool
}

// conditionLayers maps each known icon code to its base fragments plus the
// cloud-overlay flags. Codes absent from the table get defaultLayers.
var conditionLayers = map[string]layers{
	"clear-day":           {base: []string{sunFragment}},
	"clear-night":         {base: []string{moonFragment}},
	"partly-cloudy-day":   {base: []string{sunFragment}, withCloud: true, shifted: true},
	"partly-cloudy-night": {base: []string{moonFragment}, withCloud: true, shifted: true},
	"rain":                {base: []string{rainFragment}, withCloud: true},
	"snow":                {base: []string{snowFragment}, withCloud: true},
	"hail":                {base: []string{snowFragment}, withCloud: true},
	"sleet":               {base: []string{rainFragment, snowFragment}, withCloud: true},
	"wind":                {base: []string{windFragment}},
}

// defaultLayers keeps the historical fall-through behavior: no base layer,
// cloud overlay present.
var defaultLayers = layers{withCloud: true}

// Render composes the SVG document for the given icon code.
func Render(code string) string {
	l, ok := conditionLayers[code]
	if !ok {
		l = defaultLayers
	}

	var b strings.Builder
	b.WriteString(svgOpen)

	for _, fragment := range l.base {
		b.WriteString(fragment)
	}

	if l.withCloud {
		if l.shifted {
			b.WriteString(cloudShiftOpen)
			b.WriteString(cloudFragment)
			b.WriteString(cloudShiftClose)
		} else {
			b.WriteString(cloudFragment)
		}
	}

	b.WriteString(creditFragment)
	b.WriteString(svgClose)

	return b.String()
}
