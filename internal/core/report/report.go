// Package report lays out a downloadable calculation report: a title, the
// scenario's charts side by side and a summary block of headline figures.
package report

import (
	"bytes"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Nzyazin/fincalc/internal/core/chart"
)

const (
	headerHeight  = 50
	summaryGap    = 30
	lineHeight    = 22
	bottomPadding = 20
	marginLeft    = 40

	SummaryHeading = "Результати та аналіз:"
)

// Grouped thousands with a dot for decimals, whatever the currency.
var numbers = message.NewPrinter(language.English)

// Document is everything a report shows.
type Document struct {
	Title   string
	Charts  []chart.Chart
	Summary []string
}

// Size is the canvas a document needs: charts side by side, then one row per
// summary line under the heading.
func (d Document) Size() (width, height int) {
	width = chart.Width * max(len(d.Charts), 1)
	height = headerHeight + chart.Height + summaryGap + lineHeight*(len(d.Summary)+1) + bottomPadding
	return width, height
}

// Render writes the document as a single SVG.
func (d Document) Render() string {
	width, height := d.Size()

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Rect(0, 0, width, height, `fill="white"`)
	canvas.Text(width/2, 32, d.Title,
		`class="report-title"`, `font-family="sans-serif"`, `font-size="22"`, `font-weight="bold"`, `text-anchor="middle"`)

	for i, c := range d.Charts {
		canvas.Translate(i*chart.Width, headerHeight)
		c.Draw(canvas)
		canvas.Gend()
	}

	y := headerHeight + chart.Height + summaryGap
	canvas.Text(marginLeft, y, SummaryHeading,
		`class="summary-heading"`, `font-family="sans-serif"`, `font-size="14"`, `font-weight="bold"`)
	for _, line := range d.Summary {
		y += lineHeight
		canvas.Text(marginLeft, y, line,
			`class="summary"`, `font-family="sans-serif"`, `font-size="12"`)
	}

	canvas.End()
	return buf.String()
}

// Money prefixes the currency symbol to an amount with two decimals and
// grouped thousands, e.g. "€100,000.00".
func Money(symbol string, v float64) string {
	return symbol + numbers.Sprintf("%.2f", v)
}

// Number prints v in its shortest exact form, e.g. 76.92 or 80.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
