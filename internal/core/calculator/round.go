package calculator

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundMoney rounds half away from zero to cents. NaN and infinities pass
// through untouched since decimal cannot represent them.
func roundMoney(v float64) float64 {
	return roundPlaces(v, 2)
}

// roundPercent rounds to one decimal place.
func roundPercent(v float64) float64 {
	return roundPlaces(v, 1)
}

func roundPlaces(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
