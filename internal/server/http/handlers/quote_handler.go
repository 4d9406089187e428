package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/loandesk/internal/finance"
	"github.com/polkiloo/loandesk/internal/server/http/dto"
)

// QuoteHandler serves unauthenticated pricing lookups. Nothing is persisted.
type QuoteHandler struct{}

// NewQuoteHandler constructs QuoteHandler.
func NewQuoteHandler() *QuoteHandler {
	return &QuoteHandler{}
}

// Rate handles GET /api/loans/rates?tenure=N.
func (h *QuoteHandler) Rate(c *gin.Context) {
	tenure, err := strconv.Atoi(c.Query("tenure"))
	if err != nil || tenure <= 0 {
		fail(c, http.StatusBadRequest, "tenure in months is required")
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{InterestRate: finance.RateForTenure(tenure)})
}

// Quote handles GET /api/loans/quote?amount=N&tenure=N.
func (h *QuoteHandler) Quote(c *gin.Context) {
	amount, amountErr := strconv.ParseInt(c.Query("amount"), 10, 64)
	tenure, tenureErr := strconv.Atoi(c.Query("tenure"))
	if amountErr != nil || tenureErr != nil || amount <= 0 || tenure <= 0 {
		fail(c, http.StatusBadRequest, "amount and tenure are required")
		return
	}

	rate := finance.RateForTenure(tenure)
	quote := finance.Compute(amount, float64(rate), tenure)

	c.JSON(http.StatusOK, dto.QuoteResponse{
		Principal:    amount,
		Tenure:       tenure,
		InterestRate: rate,
		EMI:          quote.EMI,
		Interest:     quote.Interest,
		Total:        quote.Total,
	})
}
