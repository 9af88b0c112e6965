package icon

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_KnownConditions(t *testing.T) {
	tests := []struct {
		code        string
		wantBase    []string
		wantNoBase  []string
		wantCloud   bool
		wantShifted bool
	}{
		{
			code:     "clear-day",
			wantBase: []string{`id="sun"`},
		},
		{
			code:     "clear-night",
			wantBase: []string{`id="moon"`},
		},
		{
			code:        "partly-cloudy-day",
			wantBase:    []string{`id="sun"`},
			wantCloud:   true,
			wantShifted: true,
		},
		{
			code:        "partly-cloudy-night",
			wantBase:    []string{`id="moon"`},
			wantCloud:   true,
			wantShifted: true,
		},
		{
			code:      "rain",
			wantBase:  []string{`id="rain"`},
			wantCloud: true,
		},
		{
			code:      "snow",
			wantBase:  []string{`id="snow"`},
			wantCloud: true,
		},
		{
			code:       "hail",
			wantBase:   []string{`id="snow"`},
			wantNoBase: []string{`id="rain"`},
			wantCloud:  true,
		},
		{
			code:      "sleet",
			wantBase:  []string{`id="rain"`, `id="snow"`},
			wantCloud: true,
		},
		{
			code:       "wind",
			wantBase:   []string{`id="wind"`},
			wantNoBase: []string{`id="cloud"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			svg := Render(tt.code)

			assert.Contains(t, svg, `viewBox="0 0 200 230"`)
			for _, fragment := range tt.wantBase {
				assert.Contains(t, svg, fragment)
			}
			for _, fragment := range tt.wantNoBase {
				assert.NotContains(t, svg, fragment)
			}

			if tt.wantCloud {
				assert.Contains(t, svg, `id="cloud"`)
			} else {
				assert.NotContains(t, svg, `id="cloud"`)
			}

			if tt.wantShifted {
				assert.Contains(t, svg, cloudShiftOpen+cloudFragment+cloudShiftClose)
			} else {
				assert.NotContains(t, svg, cloudShiftOpen)
			}

			assert.Equal(t, 1, strings.Count(svg, "Powered by Dark Sky"))
		})
	}
}

func TestRender_UnknownCodeKeepsDefaultBranch(t *testing.T) {
	svg := Render("tornado")

	// No base layer, but cloud and credit are always there
	assert.NotContains(t, svg, `id="sun"`)
	assert.NotContains(t, svg, `id="moon"`)
	assert.NotContains(t, svg, `id="rain"`)
	assert.NotContains(t, svg, `id="snow"`)
	assert.NotContains(t, svg, `id="wind"`)
	assert.Contains(t, svg, `id="cloud"`)
	assert.Equal(t, 1, strings.Count(svg, "Powered by Dark Sky"))
}

func TestRender_EmptyCodeBehavesLikeUnknown(t *testing.T) {
	assert.Equal(t, Render("tornado"), Render(""))
}

func TestRender_WellFormedXML(t *testing.T) {
	codes := []string{
		"clear-day", "clear-night", "partly-cloudy-day", "partly-cloudy-night",
		"rain", "snow", "hail", "sleet", "wind", "whatever",
	}

	for _, code := range codes {
		var doc struct{}
		err := xml.Unmarshal([]byte(Render(code)), &doc)
		assert.NoError(t, err, "code %q", code)
	}
}

func TestRender_Deterministic(t *testing.T) {
	assert.Equal(t, Render("sleet"), Render("sleet"))
}
