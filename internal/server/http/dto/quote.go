package dto

// RateResponse carries the annual interest rate for a tenure.
type RateResponse struct {
	InterestRate int `json:"interest_rate"`
}

// QuoteResponse carries the full pricing for an amount/tenure pair.
type QuoteResponse struct {
	Principal    int64   `json:"principal"`
	Tenure       int     `json:"tenure"`
	InterestRate int     `json:"interest_rate"`
	EMI          float64 `json:"emi"`
	Interest     float64 `json:"interest"`
	Total        float64 `json:"total"`
}
