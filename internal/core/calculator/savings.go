package calculator

import (
	"math"

	"github.com/Nzyazin/fincalc/internal/core/chart"
	"github.com/Nzyazin/fincalc/internal/core/models"
)

// withdrawal rate that a retirement capital is expected to sustain
const safeWithdrawalRate = 0.04

// futureValue compounds a lump sum and a monthly contribution over n months
// at monthly rate r. At r == 0 both grow linearly; a negative r compounds the
// same way as a positive one.
func futureValue(lump, monthly, r float64, n int) float64 {
	if r == 0 {
		return lump + monthly*float64(n)
	}
	growth := math.Pow(1+r, float64(n))
	return lump*growth + monthly*(growth-1)/r
}

func Investment(req models.InvestmentRequest) models.InvestmentResponse {
	r := req.AnnualReturn / 100 / 12
	n := int(req.Period * 12)

	fv := futureValue(req.InitialAmount, req.MonthlyContribution, r, n)
	contributions := req.InitialAmount + req.MonthlyContribution*float64(n)
	gain := fv - contributions

	roi := 0.0
	if contributions > 0 {
		roi = gain / contributions * 100
	}

	return models.InvestmentResponse{
		FutureValue:        roundMoney(fv),
		TotalContributions: roundMoney(contributions),
		TotalGain:          roundMoney(gain),
		ROI:                roundPercent(roi),
		CurrencySymbol:     models.CurrencySymbol(req.Currency),
		Chart:              investmentChart(contributions, gain).Render(),
	}
}

// Retirement projects savings to the retirement age and compares them with
// the capital a 4% withdrawal needs to fund the desired monthly income.
func Retirement(req models.RetirementRequest) models.RetirementResponse {
	years := req.RetirementAge - req.CurrentAge
	r := req.ExpectedReturn / 100 / 12
	n := int(years * 12)

	fv := futureValue(req.CurrentSavings, req.MonthlySavings, r, n)
	required := req.DesiredIncome * 12 / safeWithdrawalRate
	gap := math.Max(0, required-fv)

	return models.RetirementResponse{
		FutureValue:     roundMoney(fv),
		RequiredCapital: roundMoney(required),
		Gap:             roundMoney(gap),
		CurrencySymbol:  models.CurrencySymbol(req.Currency),
		Chart:           retirementChart(fv, required).Render(),
	}
}

// EmergencyFund measures the distance to a months-of-expenses cushion.
// Without a monthly contribution the time to target is NoContributionMonths.
func EmergencyFund(req models.EmergencyFundRequest) models.EmergencyFundResponse {
	target := req.MonthlyExpenses * req.MonthsCoverage
	remaining := math.Max(0, target-req.CurrentSavings)

	monthsToTarget := float64(models.NoContributionMonths)
	if req.MonthlyContribution > 0 {
		monthsToTarget = roundPercent(remaining / req.MonthlyContribution)
	}

	return models.EmergencyFundResponse{
		TargetAmount:    roundMoney(target),
		RemainingAmount: roundMoney(remaining),
		MonthsToTarget:  monthsToTarget,
		CurrencySymbol:  models.CurrencySymbol(req.Currency),
		Chart:           emergencyChart(req.CurrentSavings, target).Render(),
	}
}

func investmentChart(contributions, gain float64) chart.Chart {
	return chart.NewChart(
		"Структура капіталу",
		[]string{"Внески", "Прибуток"},
		[]float64{contributions, gain},
		[]string{"#3498db", "#2ecc71"},
	)
}

func retirementChart(projected, required float64) chart.Chart {
	return chart.NewChart(
		"Пенсійне забезпечення",
		[]string{"Матимете", "Необхідно"},
		[]float64{projected, required},
		[]string{"#2ecc71", "#e67e22"},
	)
}

func emergencyChart(current, target float64) chart.Chart {
	return chart.NewChart(
		"Статус подушки",
		[]string{"Наявне", "Ціль"},
		[]float64{current, target},
		[]string{"#3498db", "#f1c40f"},
	)
}
