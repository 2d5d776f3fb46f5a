package calculator

import (
	"math"

	"github.com/Nzyazin/fincalc/internal/core/chart"
	"github.com/Nzyazin/fincalc/internal/core/models"
)

const (
	// yearly upkeep of an owned property as a share of its price
	propertyTaxRate = 0.01
	// growth of a down payment kept invested instead of buying
	alternativeReturnRate = 0.07
)

// annuityPayment is the fixed monthly payment repaying principal over n
// months at monthly rate r. A zero rate splits the principal evenly; a
// non-positive term yields no payment.
func annuityPayment(principal, r, n float64) float64 {
	switch {
	case n <= 0:
		return 0
	case r == 0:
		return principal / n
	default:
		growth := math.Pow(1+r, n)
		return principal * r * growth / (growth - 1)
	}
}

func Credit(req models.CreditRequest) models.CreditResponse {
	r := req.Rate / 100 / 12
	n := req.Term * 12

	payment := annuityPayment(req.Amount, r, n)
	total := payment * n
	overpayment := total - req.Amount

	return models.CreditResponse{
		MonthlyPayment: roundMoney(payment),
		TotalPayment:   roundMoney(total),
		Overpayment:    roundMoney(overpayment),
		CurrencySymbol: models.CurrencySymbol(req.Currency),
		Chart:          creditChart(req.Amount, overpayment).Render(),
	}
}

// DebtPayoff finds how many months a fixed payment needs to clear a balance.
// A payment that does not exceed the monthly interest never clears it and
// yields the NeverPaidOffMonths sentinel with zero totals. A balance that is
// zero or negative is already cleared: zero months, nothing paid.
func DebtPayoff(req models.DebtPayoffRequest) models.DebtPayoffResponse {
	r := req.InterestRate / 100 / 12
	payment := req.MonthlyPayment + req.ExtraPayment
	symbol := models.CurrencySymbol(req.Currency)

	if req.Balance <= 0 {
		return models.DebtPayoffResponse{
			CurrencySymbol: symbol,
			Chart:          debtChart(0, 0).Render(),
		}
	}

	if payment <= req.Balance*r || payment <= 0 {
		return models.DebtPayoffResponse{
			Months:         models.NeverPaidOffMonths,
			TotalPaid:      0,
			TotalInterest:  0,
			CurrencySymbol: symbol,
			Chart:          chart.Chart{Title: debtChartTitle}.Render(),
		}
	}

	var months float64
	if r == 0 {
		months = req.Balance / payment
	} else {
		months = math.Log(payment/(payment-req.Balance*r)) / math.Log(1+r)
	}
	totalPaid := payment * months
	totalInterest := totalPaid - req.Balance

	return models.DebtPayoffResponse{
		Months:         int(math.Ceil(months)),
		TotalPaid:      roundMoney(totalPaid),
		TotalInterest:  roundMoney(totalInterest),
		CurrencySymbol: symbol,
		Chart:          debtChart(req.Balance, totalInterest).Render(),
	}
}

// BuyRent simulates both options month by month over the horizon and compares
// the net position each leaves behind.
func BuyRent(req models.BuyRentRequest) models.BuyRentResponse {
	loan := math.Max(0, req.PropertyPrice-req.DownPayment)
	r := req.MortgageRate / 100 / 12
	n := math.Trunc(req.MortgageTerm * 12)

	var mortgagePayment float64
	if loan > 0 {
		mortgagePayment = annuityPayment(loan, r, n)
	}

	months := int(req.Horizon) * 12
	monthlyUpkeep := req.PropertyPrice * propertyTaxRate / 12

	buyCost := req.DownPayment
	rentCost := 0.0
	rent := req.MonthlyRent
	for m := 1; m <= months; m++ {
		buyCost += mortgagePayment + monthlyUpkeep
		rentCost += rent
		if m%12 == 0 {
			rent *= 1 + req.RentGrowth/100
		}
	}

	finalPropertyValue := req.PropertyPrice * math.Pow(1+req.PropertyGrowth/100, req.Horizon)
	netBuy := finalPropertyValue - buyCost
	netRent := req.DownPayment*math.Pow(1+alternativeReturnRate, req.Horizon) - rentCost

	recommendation := models.RecommendRent
	if netBuy > netRent {
		recommendation = models.RecommendBuy
	}

	return models.BuyRentResponse{
		NetBuyPosition:  roundMoney(netBuy),
		NetRentPosition: roundMoney(netRent),
		Recommendation:  recommendation,
		CurrencySymbol:  models.CurrencySymbol(req.Currency),
		Chart:           buyRentChart(netBuy, netRent).Render(),
	}
}

const debtChartTitle = "Структура боргу"

func creditChart(amount, overpayment float64) chart.Chart {
	return chart.NewChart(
		"Структура виплат",
		[]string{"Тіло", "Переплата"},
		[]float64{amount, overpayment},
		[]string{"#3498db", "#e74c3c"},
	)
}

// rateComparisonChart sets the loan rate against inflation and the return an
// alternative investment would bring, all in percent.
func rateComparisonChart(rate, inflation, alternative float64) chart.Chart {
	return chart.NewChart(
		"Порівняння показників (%)",
		[]string{"Ставка", "Інфляція", "Альтерн."},
		[]float64{rate, inflation, alternative},
		[]string{"#e74c3c", "#95a5a6", "#2ecc71"},
	)
}

func debtChart(balance, interest float64) chart.Chart {
	return chart.NewChart(
		debtChartTitle,
		[]string{"Борг", "Відсотки"},
		[]float64{balance, interest},
		[]string{"#3498db", "#e74c3c"},
	)
}

func buyRentChart(netBuy, netRent float64) chart.Chart {
	return chart.NewChart(
		"Капітал через горизонт",
		[]string{"Купівля", "Оренда"},
		[]float64{netBuy, netRent},
		[]string{"#2ecc71", "#3498db"},
	)
}
