package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/loandesk/internal/domain/model"
	"github.com/polkiloo/loandesk/internal/server/http/dto"
)

// LoanHandler manages loan lifecycle endpoints.
type LoanHandler struct {
	facade LoanFacade
}

// NewLoanHandler constructs LoanHandler.
func NewLoanHandler(facade LoanFacade) *LoanHandler {
	return &LoanHandler{facade: facade}
}

// Request handles POST /api/loans: application to loan conversion by an agent.
func (h *LoanHandler) Request(c *gin.Context) {
	var req dto.RequestLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "application_id and user_id are required")
		return
	}

	actor := CurrentActor(c)
	if _, err := h.facade.RequestLoan(c.Request.Context(), actor, req.ApplicationID, req.UserID); err != nil {
		respondDomainError(c, err)
		return
	}

	ack(c, "new loan requested")
}

// List handles GET /api/loans. Plain users see only loans they own.
func (h *LoanHandler) List(c *gin.Context) {
	actor := CurrentActor(c)
	loans, err := h.facade.Loans(c.Request.Context(), actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := make([]dto.LoanResponse, 0, len(loans))
	for _, l := range loans {
		response = append(response, toLoanResponse(l))
	}

	c.JSON(http.StatusOK, gin.H{"loans": response})
}

// Approve handles PUT /api/loans/approve.
func (h *LoanHandler) Approve(c *gin.Context) {
	var req dto.ApproveLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "loan_id and user_id are required")
		return
	}

	actor := CurrentActor(c)
	loan, err := h.facade.ApproveLoan(c.Request.Context(), actor, req.LoanID, req.UserID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	ack(c, fmt.Sprintf("loan %d approved", loan.ID))
}

// Edit handles PUT /api/loans/:id: repricing of an unapproved loan.
func (h *LoanHandler) Edit(c *gin.Context) {
	loanID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid loan id")
		return
	}

	var req dto.EditLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "amount and tenure are required")
		return
	}

	actor := CurrentActor(c)
	loan, err := h.facade.EditLoan(c.Request.Context(), actor, loanID, req.Amount, req.Tenure)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	ack(c, fmt.Sprintf("loan %d updated", loan.ID))
}

func toLoanResponse(l model.Loan) dto.LoanResponse {
	return dto.LoanResponse{
		ID:            l.ID,
		ApplicationID: l.ApplicationID,
		UserID:        l.UserID,
		Principal:     l.Principal,
		Tenure:        l.Tenure,
		InterestRate:  l.InterestRate,
		EMI:           l.EMI,
		Interest:      l.Interest,
		Total:         l.Total,
		State:         string(l.State),
		RequestDate:   l.RequestDate,
		StartDate:     l.StartDate,
	}
}
