package models

type HourlyIncomeRequest struct {
	MonthlyIncome float64 `json:"monthly_income"`
	Taxes         float64 `json:"taxes"`
	WorkHours     float64 `json:"work_hours"`
	CommuteTime   float64 `json:"commute_time"`
	WorkExpenses  float64 `json:"work_expenses"`
	Currency      string  `json:"currency,omitempty"`
}

type HourlyIncomeResponse struct {
	RealHourlyIncome    float64 `json:"real_hourly_income"`
	NominalHourlyIncome float64 `json:"nominal_hourly_income"`
	NetIncome           float64 `json:"net_income"`
	Efficiency          float64 `json:"efficiency"`
	CurrencySymbol      string  `json:"currency_symbol"`
	Chart               string  `json:"chart"`
}

type TimeValueRequest struct {
	AnnualIncome float64 `json:"annual_income"`
	AnnualHours  float64 `json:"annual_hours"`
	Currency     string  `json:"currency,omitempty"`
}

type TimeValueResponse struct {
	TimeValue      float64 `json:"time_value"`
	CurrencySymbol string  `json:"currency_symbol"`
	Chart          string  `json:"chart"`
}

// TaxRequest takes the rate directly or, when TaxRate is absent, derives it
// from Country.
type TaxRequest struct {
	Income   float64  `json:"income"`
	TaxRate  *float64 `json:"tax_rate,omitempty" validate:"required_without=Country"`
	Country  string   `json:"country,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

type TaxResponse struct {
	TaxAmount      float64 `json:"tax_amount"`
	NetIncome      float64 `json:"net_income"`
	EffectiveRate  float64 `json:"effective_rate"`
	CurrencySymbol string  `json:"currency_symbol"`
	Chart          string  `json:"chart"`
}
