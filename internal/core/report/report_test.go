package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nzyazin/fincalc/internal/core/chart"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		symbol string
		value  float64
		want   string
	}{
		{symbol: "€", value: 100000, want: "€100,000.00"},
		{symbol: "$", value: 536.82, want: "$536.82"},
		{symbol: "₴", value: 1234567.891, want: "₴1,234,567.89"},
		{symbol: "€", value: 0, want: "€0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Money(tt.symbol, tt.value))
		})
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "76.92", Number(76.92))
	assert.Equal(t, "80", Number(80))
	assert.Equal(t, "-1", Number(-1))
}

func TestRenderLaysOutChartsAndSummary(t *testing.T) {
	doc := Document{
		Title: "Кредитний звіт",
		Charts: []chart.Chart{
			chart.NewChart("Розподіл виплат", []string{"Тіло", "Переплата"}, []float64{100000, 93255.78}, nil),
			chart.NewChart("Порівняння показників (%)", []string{"Ставка", "Інфляція"}, []float64{5, 3}, nil),
		},
		Summary: []string{
			"Кредит: " + Money("€", 100000),
			"Щомісячний платіж: " + Money("€", 536.82),
		},
	}

	out := doc.Render()

	width, height := doc.Size()
	assert.Equal(t, 2*chart.Width, width)
	assert.Contains(t, out, `<svg width="800" height="`+itoa(height)+`"`)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))

	assert.Contains(t, out, ">Кредитний звіт</text>")
	assert.Contains(t, out, `<g transform="translate(0,50)">`)
	assert.Contains(t, out, `<g transform="translate(400,50)">`)
	assert.Contains(t, out, ">Розподіл виплат</text>")
	assert.Contains(t, out, ">Порівняння показників (%)</text>")
	assert.Equal(t, 4, strings.Count(out, `class="bar"`))

	assert.Contains(t, out, ">"+SummaryHeading+"</text>")
	assert.Contains(t, out, ">Кредит: €100,000.00</text>")
	assert.Contains(t, out, ">Щомісячний платіж: €536.82</text>")
	assert.Equal(t, 2, strings.Count(out, `class="summary"`))
}

func TestRenderWithoutCharts(t *testing.T) {
	doc := Document{Title: "Звіт", Summary: []string{"a", "b", "c"}}

	width, height := doc.Size()
	assert.Equal(t, chart.Width, width)
	assert.Equal(t, headerHeight+chart.Height+summaryGap+lineHeight*4+bottomPadding, height)

	out := doc.Render()
	assert.NotContains(t, out, "<g ")
	assert.Equal(t, 3, strings.Count(out, `class="summary"`))
}

func TestRenderEscapesSummaryText(t *testing.T) {
	out := Document{Title: "A & B", Summary: []string{"<b>x</b>"}}.Render()

	require.NotContains(t, out, "<b>x</b>")
	assert.Contains(t, out, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, out, "A &amp; B")
}

func itoa(n int) string {
	return Number(float64(n))
}
