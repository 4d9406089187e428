package finance

// RateForTenure maps a loan tenure in months to an annual interest rate
// percentage. Tiers are closed and ordered; first match wins. Callers must
// reject non-positive tenure before pricing.
func RateForTenure(tenureMonths int) int {
	switch {
	case tenureMonths <= 5:
		return 10
	case tenureMonths <= 24:
		return 12
	default:
		return 15
	}
}
