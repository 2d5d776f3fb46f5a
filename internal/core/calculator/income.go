package calculator

import (
	"strings"

	"github.com/Nzyazin/fincalc/internal/core/chart"
	"github.com/Nzyazin/fincalc/internal/core/models"
)

const (
	hoursPerDay   = 8
	hoursPerWeek  = 40
	hoursPerMonth = 160
)

// Flat rates applied when a tax request names a country instead of a rate.
var countryTaxRates = map[string]float64{
	"ukraine":     19.5,
	"poland":      12,
	"germany":     30,
	"netherlands": 37,
}

const defaultCountryTaxRate = 20.0

// HourlyIncome compares the advertised hourly rate with what is left per hour
// once taxes, work expenses and commuting are accounted for.
func HourlyIncome(req models.HourlyIncomeRequest) models.HourlyIncomeResponse {
	netMonthly := req.MonthlyIncome*(1-req.Taxes/100) - req.WorkExpenses
	realHourly := netMonthly / (req.WorkHours + req.CommuteTime)
	nominalHourly := req.MonthlyIncome / req.WorkHours
	efficiency := realHourly / nominalHourly * 100

	return models.HourlyIncomeResponse{
		RealHourlyIncome:    roundMoney(realHourly),
		NominalHourlyIncome: roundMoney(nominalHourly),
		NetIncome:           roundMoney(netMonthly),
		Efficiency:          roundPercent(efficiency),
		CurrencySymbol:      models.CurrencySymbol(req.Currency),
		Chart:               hourlyRatesChart(nominalHourly, realHourly).Render(),
	}
}

// TimeValue prices one hour of work and scales it to a day, week and month.
func TimeValue(req models.TimeValueRequest) models.TimeValueResponse {
	hourly := req.AnnualIncome / req.AnnualHours

	return models.TimeValueResponse{
		TimeValue:      roundMoney(hourly),
		CurrencySymbol: models.CurrencySymbol(req.Currency),
		Chart:          timeValueChart(hourly).Render(),
	}
}

func Tax(req models.TaxRequest) models.TaxResponse {
	ratePercent := TaxRate(req)
	taxAmount := req.Income * (ratePercent / 100)
	netIncome := req.Income - taxAmount

	return models.TaxResponse{
		TaxAmount:      roundMoney(taxAmount),
		NetIncome:      roundMoney(netIncome),
		EffectiveRate:  roundPercent(ratePercent),
		CurrencySymbol: models.CurrencySymbol(req.Currency),
		Chart:          taxChart(netIncome, taxAmount).Render(),
	}
}

// TaxRate is the explicit rate when given, otherwise the country's flat rate.
func TaxRate(req models.TaxRequest) float64 {
	if req.TaxRate != nil {
		return *req.TaxRate
	}
	if rate, ok := countryTaxRates[strings.ToLower(strings.TrimSpace(req.Country))]; ok {
		return rate
	}
	return defaultCountryTaxRate
}

func hourlyRatesChart(nominal, real float64) chart.Chart {
	return chart.NewChart(
		"Порівняння ставок",
		[]string{"Номінальна", "Реальна"},
		[]float64{nominal, real},
		[]string{"#95a5a6", "#2ecc71"},
	)
}

func timeSplitChart(work, commute float64) chart.Chart {
	return chart.NewChart(
		"Розподіл часу",
		[]string{"Робота", "Дорога"},
		[]float64{work, commute},
		[]string{"#3498db", "#9b59b6"},
	)
}

func timeValueChart(hourly float64) chart.Chart {
	return chart.NewChart(
		"Вартість часу",
		[]string{"Година", "День", "Тиждень", "Місяць"},
		[]float64{hourly, hourly * hoursPerDay, hourly * hoursPerWeek, hourly * hoursPerMonth},
		[]string{"#3498db", "#3498db", "#3498db", "#3498db"},
	)
}

func taxChart(net, tax float64) chart.Chart {
	return chart.NewChart(
		"Структура доходу",
		[]string{"Чистий", "Податок"},
		[]float64{net, tax},
		[]string{"#2ecc71", "#e74c3c"},
	)
}
