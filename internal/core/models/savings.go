package models

type InvestmentRequest struct {
	InitialAmount       float64 `json:"initial_amount"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	AnnualReturn        float64 `json:"annual_return"`
	Period              float64 `json:"period"`
	Currency            string  `json:"currency,omitempty"`
}

type InvestmentResponse struct {
	FutureValue        float64 `json:"future_value"`
	TotalContributions float64 `json:"total_contributions"`
	TotalGain          float64 `json:"total_gain"`
	ROI                float64 `json:"roi"`
	CurrencySymbol     string  `json:"currency_symbol"`
	Chart              string  `json:"chart"`
}

type RetirementRequest struct {
	CurrentAge     float64 `json:"current_age"`
	RetirementAge  float64 `json:"retirement_age"`
	DesiredIncome  float64 `json:"desired_income"`
	CurrentSavings float64 `json:"current_savings"`
	MonthlySavings float64 `json:"monthly_savings,omitempty"`
	ExpectedReturn float64 `json:"expected_return"`
	Currency       string  `json:"currency,omitempty"`
}

type RetirementResponse struct {
	FutureValue     float64 `json:"future_value"`
	RequiredCapital float64 `json:"required_capital"`
	Gap             float64 `json:"gap"`
	CurrencySymbol  string  `json:"currency_symbol"`
	Chart           string  `json:"chart"`
}

type EmergencyFundRequest struct {
	MonthlyExpenses     float64 `json:"monthly_expenses"`
	MonthsCoverage      float64 `json:"months_coverage"`
	CurrentSavings      float64 `json:"current_savings"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	Currency            string  `json:"currency,omitempty"`
}

// EmergencyFundResponse uses NoContributionMonths when nothing is saved monthly.
type EmergencyFundResponse struct {
	TargetAmount    float64 `json:"target_amount"`
	RemainingAmount float64 `json:"remaining_amount"`
	MonthsToTarget  float64 `json:"months_to_target"`
	CurrencySymbol  string  `json:"currency_symbol"`
	Chart           string  `json:"chart"`
}

const NoContributionMonths = -1
