package models

// Scenario identifies one calculation; its value is the route segment.
type Scenario string

const (
	ScenarioHourlyIncome  Scenario = "hourly-income"
	ScenarioTimeValue     Scenario = "time-value"
	ScenarioInvestment    Scenario = "investment"
	ScenarioCredit        Scenario = "credit"
	ScenarioRetirement    Scenario = "retirement"
	ScenarioDebtPayoff    Scenario = "debt-payoff"
	ScenarioEmergencyFund Scenario = "emergency-fund"
	ScenarioTax           Scenario = "tax"
	ScenarioBuyRent       Scenario = "buy-rent"
)

var reportNames = map[Scenario]string{
	ScenarioHourlyIncome:  "hourly_report",
	ScenarioTimeValue:     "time_report",
	ScenarioInvestment:    "investment_report",
	ScenarioCredit:        "credit_report",
	ScenarioRetirement:    "retirement_report",
	ScenarioDebtPayoff:    "debt_report",
	ScenarioEmergencyFund: "emergency_report",
	ScenarioTax:           "tax_report",
	ScenarioBuyRent:       "buy_rent_report",
}

// Scenarios lists every calculation in route registration order.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioHourlyIncome,
		ScenarioTimeValue,
		ScenarioInvestment,
		ScenarioCredit,
		ScenarioRetirement,
		ScenarioDebtPayoff,
		ScenarioEmergencyFund,
		ScenarioTax,
		ScenarioBuyRent,
	}
}

// ReportFileName is the download name of the scenario's report.
func (s Scenario) ReportFileName() string {
	name, ok := reportNames[s]
	if !ok {
		name = "report"
	}
	return name + ".svg"
}
