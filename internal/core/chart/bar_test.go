package chart

import (
	"bytes"
	"encoding/xml"
	"math"
	"strings"
	"testing"

	svgo "github.com/ajstarks/svgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBarChartSingleBar(t *testing.T) {
	svg := RenderBarChart("Вартість", []string{"Година"}, []float64{42.4}, []string{"#2ecc71"})

	assert.Equal(t, 1, strings.Count(svg, `class="bar"`))
	assert.Equal(t, 1, strings.Count(svg, `class="title"`))
	assert.Contains(t, svg, `<svg width="400" height="300"`)
	assert.Contains(t, svg, `viewBox="0 0 400 300"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(svg), `</svg>`))
	// A lone bar spans the plot width minus the gap and fills the plot height.
	assert.Contains(t, svg, `<rect x="45" y="40" width="310" height="220" rx="4" ry="4" class="bar" fill="#2ecc71" />`)
	assert.Contains(t, svg, `>42</text>`)
	assertWellFormed(t, svg)
}

func TestRenderBarChartAllZero(t *testing.T) {
	svg := RenderBarChart("Zero", []string{"a", "b", "c"}, []float64{0, 0, 0}, nil)

	assert.Equal(t, 3, strings.Count(svg, `class="bar"`))
	assert.Equal(t, 3, strings.Count(svg, `height="0"`))
	assert.NotContains(t, svg, "NaN")
	assert.NotContains(t, svg, `height="-`)
	assert.Equal(t, 3, strings.Count(svg, `fill="`+DefaultColor+`"`))
}

func TestRenderBarChartScalesToLargestValue(t *testing.T) {
	svg := RenderBarChart("Scale", []string{"low", "high"}, []float64{50, 100}, []string{"#111111", "#222222"})

	// plot width 320 over two bars: 150 wide, x = 45 and 205
	assert.Contains(t, svg, `x="45" y="150" width="150" height="110" rx="4" ry="4" class="bar" fill="#111111"`)
	assert.Contains(t, svg, `x="205" y="40" width="150" height="220" rx="4" ry="4" class="bar" fill="#222222"`)
}

func TestRenderBarChartDegenerateValues(t *testing.T) {
	svg := RenderBarChart("Edge", []string{"neg", "nan", "pos"}, []float64{-500, math.NaN(), 10}, nil)

	assert.Equal(t, 3, strings.Count(svg, `class="bar"`))
	assert.NotContains(t, svg, `height="-`)
	assert.Contains(t, svg, `>-500</text>`)
	assert.Contains(t, svg, `height="220"`)
	assertWellFormed(t, svg)
}

func TestRenderEmptySeries(t *testing.T) {
	svg := RenderBarChart("Empty", nil, nil, nil)

	assert.Equal(t, 0, strings.Count(svg, `class="bar"`))
	assert.Equal(t, 1, strings.Count(svg, `class="title"`))
	assertWellFormed(t, svg)
}

func TestRenderEscapesText(t *testing.T) {
	svg := RenderBarChart("A & B <c>", []string{`"x"<y>`}, []float64{1}, nil)

	assert.Contains(t, svg, "A &amp; B &lt;c&gt;")
	assertWellFormed(t, svg)
}

func TestRenderEscapesColorAttribute(t *testing.T) {
	svg := RenderBarChart("Colors", []string{"a"}, []float64{1}, []string{`red" onload="x`})

	assert.Contains(t, svg, `fill="red&#34; onload=&#34;x"`)
	assertWellFormed(t, svg)
}

func TestDrawComposesIntoLargerCanvas(t *testing.T) {
	var buf bytes.Buffer
	canvas := svgo.New(&buf)
	canvas.Start(Width, Height*2)
	for i, c := range []Chart{
		NewChart("Перший", []string{"a"}, []float64{1}, nil),
		NewChart("Другий", []string{"b", "c"}, []float64{1, 2}, nil),
	} {
		canvas.Translate(0, i*Height)
		c.Draw(canvas)
		canvas.Gend()
	}
	canvas.End()

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, `class="bar"`))
	assert.Contains(t, out, `<g transform="translate(0,300)">`)
	assertWellFormed(t, out)
}

func TestRenderIsDeterministic(t *testing.T) {
	labels := []string{"Тіло", "Переплата"}
	values := []float64{100000, 93255.78}
	colors := []string{"#3498db", "#e74c3c"}

	assert.Equal(t, RenderBarChart("Структура", labels, values, colors), RenderBarChart("Структура", labels, values, colors))
}

func TestRenderManyBarsKeepsPositiveWidth(t *testing.T) {
	bars := make([]Bar, 64)
	for i := range bars {
		bars[i] = Bar{Label: "x", Value: float64(i)}
	}

	svg := Chart{Title: "Crowded", Bars: bars}.Render()
	assert.NotContains(t, svg, `width="0"`)
	assert.NotContains(t, svg, `width="-`)
}

func assertWellFormed(t *testing.T, svg string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(svg))
	for {
		_, err := dec.Token()
		if err != nil {
			require.ErrorContains(t, err, "EOF")
			return
		}
	}
}
