package models

// CreditRequest rates are annual percentages. Inflation and
// AlternativeReturn only feed the report's rate comparison.
type CreditRequest struct {
	Amount            float64 `json:"amount"`
	Rate              float64 `json:"rate"`
	Term              float64 `json:"term"`
	Inflation         float64 `json:"inflation,omitempty"`
	AlternativeReturn float64 `json:"alternative_return,omitempty"`
	Currency          string  `json:"currency,omitempty"`
}

type CreditResponse struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	Overpayment    float64 `json:"overpayment"`
	CurrencySymbol string  `json:"currency_symbol"`
	Chart          string  `json:"chart"`
}

type DebtPayoffRequest struct {
	Balance        float64 `json:"balance"`
	InterestRate   float64 `json:"interest_rate"`
	MonthlyPayment float64 `json:"monthly_payment"`
	ExtraPayment   float64 `json:"extra_payment,omitempty"`
	Currency       string  `json:"currency,omitempty"`
}

// DebtPayoffResponse reports NeverPaidOffMonths when the payment does not
// cover the monthly interest.
type DebtPayoffResponse struct {
	Months         int     `json:"months"`
	TotalPaid      float64 `json:"total_paid"`
	TotalInterest  float64 `json:"total_interest"`
	CurrencySymbol string  `json:"currency_symbol"`
	Chart          string  `json:"chart"`
}

const NeverPaidOffMonths = 999

type BuyRentRequest struct {
	PropertyPrice  float64 `json:"property_price"`
	DownPayment    float64 `json:"down_payment"`
	MortgageRate   float64 `json:"mortgage_rate"`
	MortgageTerm   float64 `json:"mortgage_term"`
	MonthlyRent    float64 `json:"monthly_rent"`
	RentGrowth     float64 `json:"rent_growth"`
	PropertyGrowth float64 `json:"property_growth"`
	Horizon        float64 `json:"horizon"`
	Currency       string  `json:"currency,omitempty"`
}

type Recommendation string

const (
	RecommendBuy  Recommendation = "buy"
	RecommendRent Recommendation = "rent"
)

type BuyRentResponse struct {
	NetBuyPosition  float64        `json:"net_buy_position"`
	NetRentPosition float64        `json:"net_rent_position"`
	Recommendation  Recommendation `json:"recommendation"`
	CurrencySymbol  string         `json:"currency_symbol"`
	Chart           string         `json:"chart"`
}
