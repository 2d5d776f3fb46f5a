package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencySymbol(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{code: "EUR", want: "€"},
		{code: "USD", want: "$"},
		{code: "UAH", want: "₴"},
		{code: "BTC", want: "₿"},
		{code: "GBP", want: "€"},
		{code: "usd", want: "€"},
		{code: "", want: "€"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, CurrencySymbol(tt.code))
		})
	}
}

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "credit_report.svg", ScenarioCredit.ReportFileName())
	assert.Equal(t, "debt_report.svg", ScenarioDebtPayoff.ReportFileName())
	assert.Equal(t, "buy_rent_report.svg", ScenarioBuyRent.ReportFileName())
	assert.Equal(t, "report.svg", Scenario("unknown").ReportFileName())
	assert.Len(t, Scenarios(), 9)
}
