package calculator

import (
	"fmt"
	"strings"

	"github.com/Nzyazin/fincalc/internal/core/chart"
	"github.com/Nzyazin/fincalc/internal/core/models"
	"github.com/Nzyazin/fincalc/internal/core/report"
)

// Report builders take the request and its already rounded response, so the
// summary repeats exactly what the JSON answer says.

func HourlyIncomeReport(req models.HourlyIncomeRequest, resp models.HourlyIncomeResponse) report.Document {
	sym := resp.CurrencySymbol
	return report.Document{
		Title: "Аналіз погодинного доходу",
		Charts: []chart.Chart{
			hourlyRatesChart(resp.NominalHourlyIncome, resp.RealHourlyIncome),
			timeSplitChart(req.WorkHours, req.CommuteTime),
		},
		Summary: []string{
			"Чистий дохід: " + report.Money(sym, resp.NetIncome),
			"Реальна ставка: " + report.Money(sym, resp.RealHourlyIncome) + "/год",
			"Ефективність: " + report.Number(resp.Efficiency) + "%",
		},
	}
}

func TimeValueReport(_ models.TimeValueRequest, resp models.TimeValueResponse) report.Document {
	sym, hourly := resp.CurrencySymbol, resp.TimeValue
	return report.Document{
		Title:  "Аналіз вартості часу",
		Charts: []chart.Chart{timeValueChart(hourly)},
		Summary: []string{
			"Вартість години: " + report.Money(sym, hourly),
			"Вартість дня: " + report.Money(sym, hourly*hoursPerDay),
			"Вартість тижня: " + report.Money(sym, hourly*hoursPerWeek),
			"Вартість місяця: " + report.Money(sym, hourly*hoursPerMonth),
		},
	}
}

func InvestmentReport(_ models.InvestmentRequest, resp models.InvestmentResponse) report.Document {
	sym := resp.CurrencySymbol
	return report.Document{
		Title:  "Інвестиційний звіт",
		Charts: []chart.Chart{investmentChart(resp.TotalContributions, resp.TotalGain)},
		Summary: []string{
			"Фінальна сума: " + report.Money(sym, resp.FutureValue),
			"Всього інвестовано: " + report.Money(sym, resp.TotalContributions),
			"Чистий прибуток: " + report.Money(sym, resp.TotalGain),
			"Загальний ROI: " + report.Number(resp.ROI) + "%",
		},
	}
}

func CreditReport(req models.CreditRequest, resp models.CreditResponse) report.Document {
	sym := resp.CurrencySymbol
	return report.Document{
		Title: "Кредитний звіт",
		Charts: []chart.Chart{
			creditChart(req.Amount, resp.Overpayment),
			rateComparisonChart(req.Rate, req.Inflation, req.AlternativeReturn),
		},
		Summary: []string{
			"Кредит: " + report.Money(sym, req.Amount),
			"Щомісячний платіж: " + report.Money(sym, resp.MonthlyPayment),
			"Загальна переплата: " + report.Money(sym, resp.Overpayment),
			"Загальна сума: " + report.Money(sym, resp.TotalPayment),
		},
	}
}

func RetirementReport(_ models.RetirementRequest, resp models.RetirementResponse) report.Document {
	sym := resp.CurrencySymbol
	return report.Document{
		Title:  "Пенсійний звіт",
		Charts: []chart.Chart{retirementChart(resp.FutureValue, resp.RequiredCapital)},
		Summary: []string{
			"Прогноз накопичень: " + report.Money(sym, resp.FutureValue),
			"Необхідний капітал: " + report.Money(sym, resp.RequiredCapital),
			"Дефіцит: " + report.Money(sym, resp.Gap),
		},
	}
}

func DebtPayoffReport(req models.DebtPayoffRequest, resp models.DebtPayoffResponse) report.Document {
	sym := resp.CurrencySymbol

	if resp.Months == models.NeverPaidOffMonths {
		return report.Document{
			Title:   "Звіт про погашення боргу",
			Charts:  []chart.Chart{{Title: debtChartTitle}},
			Summary: []string{"Термін погашення: платіж не покриває відсотки"},
		}
	}

	return report.Document{
		Title:  "Звіт про погашення боргу",
		Charts: []chart.Chart{debtChart(max(req.Balance, 0), resp.TotalInterest)},
		Summary: []string{
			fmt.Sprintf("Термін погашення: %d міс.", resp.Months),
			"Всього буде сплачено: " + report.Money(sym, resp.TotalPaid),
			"З них відсотків: " + report.Money(sym, resp.TotalInterest),
		},
	}
}

func EmergencyFundReport(req models.EmergencyFundRequest, resp models.EmergencyFundResponse) report.Document {
	sym := resp.CurrencySymbol

	eta := "Час до мети: " + report.Number(resp.MonthsToTarget) + " міс."
	if resp.MonthsToTarget == models.NoContributionMonths {
		eta = "Час до мети: без щомісячних внесків не досягається"
	}

	return report.Document{
		Title:  "Звіт про фінансову подушку",
		Charts: []chart.Chart{emergencyChart(req.CurrentSavings, resp.TargetAmount)},
		Summary: []string{
			"Цільова сума: " + report.Money(sym, resp.TargetAmount),
			"Залишилось зібрати: " + report.Money(sym, resp.RemainingAmount),
			eta,
		},
	}
}

func TaxReport(req models.TaxRequest, resp models.TaxResponse) report.Document {
	sym := resp.CurrencySymbol

	var summary []string
	if country := strings.TrimSpace(req.Country); country != "" && req.TaxRate == nil {
		summary = append(summary, "Країна: "+country)
	}
	summary = append(summary,
		"Дохід брутто: "+report.Money(sym, req.Income),
		"Сума податків: "+report.Money(sym, resp.TaxAmount),
		"Дохід нетто: "+report.Money(sym, resp.NetIncome),
		"Ефективна ставка: "+report.Number(resp.EffectiveRate)+"%",
	)

	return report.Document{
		Title:   "Податковий звіт",
		Charts:  []chart.Chart{taxChart(resp.NetIncome, resp.TaxAmount)},
		Summary: summary,
	}
}

func BuyRentReport(_ models.BuyRentRequest, resp models.BuyRentResponse) report.Document {
	sym := resp.CurrencySymbol

	verdict := "ОРЕНДУВАТИ"
	if resp.Recommendation == models.RecommendBuy {
		verdict = "КУПУВАТИ"
	}

	return report.Document{
		Title:  "Аналіз: Купівля vs Оренда",
		Charts: []chart.Chart{buyRentChart(resp.NetBuyPosition, resp.NetRentPosition)},
		Summary: []string{
			"Капітал при купівлі: " + report.Money(sym, resp.NetBuyPosition),
			"Капітал при оренді: " + report.Money(sym, resp.NetRentPosition),
			"Рекомендація: " + verdict,
		},
	}
}
