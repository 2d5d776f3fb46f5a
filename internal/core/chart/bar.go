// Package chart renders the bar charts attached to calculation results as
// standalone SVG documents.
package chart

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

const (
	Width   = 400
	Height  = 300
	Padding = 40

	barGap       = 10
	cornerRadius = 4

	DefaultColor = "#3498db"
)

const (
	chartWidth  = Width - Padding*2
	chartHeight = Height - Padding*2
)

// Bar is one category of a chart.
type Bar struct {
	Label string
	Value float64
	Color string
}

// Chart is a titled series of bars.
type Chart struct {
	Title string
	Bars  []Bar
}

// NewChart pairs labels[i] with values[i] and colors[i]. Missing colors fall
// back to DefaultColor. Extra values or labels without a counterpart are
// ignored.
func NewChart(title string, labels []string, values []float64, colors []string) Chart {
	n := min(len(labels), len(values))
	bars := make([]Bar, n)
	for i := 0; i < n; i++ {
		bars[i] = Bar{Label: labels[i], Value: values[i]}
		if i < len(colors) {
			bars[i].Color = colors[i]
		}
	}
	return Chart{Title: title, Bars: bars}
}

// RenderBarChart draws labels[i]/values[i] as bottom-anchored bars, left to
// right.
func RenderBarChart(title string, labels []string, values []float64, colors []string) string {
	return NewChart(title, labels, values, colors).Render()
}

// Render writes the chart as a complete Width x Height document. A chart
// without bars shows the title alone.
func (c Chart) Render() string {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(Width, Height, 0, 0, Width, Height)
	c.Draw(canvas)
	canvas.End()
	return buf.String()
}

// Draw paints the chart into the Width x Height box at the canvas origin, so
// callers composing several charts position it with a translated group.
func (c Chart) Draw(canvas *svg.SVG) {
	canvas.Rect(0, 0, Width, Height, `fill="white"`)
	canvas.Text(Width/2, 25, c.Title,
		`class="title"`, `font-family="sans-serif"`, `font-size="16"`, `font-weight="bold"`, `text-anchor="middle"`)

	if len(c.Bars) == 0 {
		return
	}

	scale := scaleFor(c.Bars)
	barWidth := max(chartWidth/len(c.Bars)-barGap, 1)

	for i, bar := range c.Bars {
		drawBar(canvas, i, bar, barWidth, scale)
	}
}

// scaleFor maps the largest value onto the full plot height. NaN values never
// win the comparison, and a non-positive maximum keeps a unit scale.
func scaleFor(bars []Bar) float64 {
	maxValue := 0.0
	for _, bar := range bars {
		if bar.Value > maxValue {
			maxValue = bar.Value
		}
	}
	if maxValue > 0 {
		return chartHeight / maxValue
	}
	return 1
}

func drawBar(canvas *svg.SVG, i int, bar Bar, barWidth int, scale float64) {
	x := Padding + i*(barWidth+barGap) + barGap/2
	h := barHeight(bar.Value, scale)
	y := Height - Padding - h
	center := x + barWidth/2

	color := bar.Color
	if color == "" {
		color = DefaultColor
	}

	canvas.Roundrect(x, y, barWidth, h, cornerRadius, cornerRadius, `class="bar"`, attr("fill", color))
	canvas.Text(center, Height-Padding+15, bar.Label,
		`class="label"`, `font-family="sans-serif"`, `font-size="10"`, `text-anchor="middle"`)
	canvas.Text(center, y-5, formatValue(bar.Value),
		`class="value"`, `font-family="sans-serif"`, `font-size="10"`, `font-weight="bold"`, `text-anchor="middle"`)
}

// barHeight is the rounded pixel height; values that cannot be drawn
// (negative, NaN, infinite) collapse to zero.
func barHeight(value, scale float64) int {
	h := math.Round(value * scale)
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0
	}
	if h > chartHeight {
		return chartHeight
	}
	return int(h)
}

func formatValue(v float64) string {
	r := math.Round(v)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// attr builds a name="value" pair; svgo writes such pairs verbatim.
func attr(name, value string) string {
	var sb strings.Builder
	sb.WriteString(name + `="`)
	_ = xml.EscapeText(&sb, []byte(value))
	sb.WriteString(`"`)
	return sb.String()
}
