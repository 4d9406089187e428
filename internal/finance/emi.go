package finance

import "math"

// Quote holds the monetary terms of a priced loan, rounded to 2 decimals.
type Quote struct {
	EMI      float64
	Total    float64
	Interest float64
}

// Compute derives the equated monthly installment for a principal at the given
// annual rate over the tenure. The monthly fractional rate is annual/1200.
// A zero rate degenerates to principal spread evenly over the tenure.
// All outputs use round-half-away-from-zero to 2 decimals, so
// Total - Principal == Interest holds exactly after rounding.
func Compute(principal int64, annualRatePercent float64, tenureMonths int) Quote {
	p := float64(principal)
	t := float64(tenureMonths)

	r := annualRatePercent / 1200
	var emi float64
	if r == 0 {
		emi = round2(p / t)
	} else {
		growth := math.Pow(1+r, t)
		emi = round2(p * r * growth / (growth - 1))
	}

	total := round2(emi * t)
	interest := round2(total - p)

	return Quote{EMI: emi, Total: total, Interest: interest}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
