package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/loandesk/internal/domain/model"
	"github.com/polkiloo/loandesk/internal/server/http/dto"
)

// ApplicationHandler manages loan application endpoints.
type ApplicationHandler struct {
	facade ApplicationFacade
}

// NewApplicationHandler constructs ApplicationHandler.
func NewApplicationHandler(facade ApplicationFacade) *ApplicationHandler {
	return &ApplicationHandler{facade: facade}
}

// Apply handles POST /api/applications.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "amount and tenure are required")
		return
	}

	actor := CurrentActor(c)
	if _, err := h.facade.Apply(c.Request.Context(), actor, req.Amount, req.Tenure); err != nil {
		respondDomainError(c, err)
		return
	}

	ack(c, "agent will send a loan request soon")
}

// List handles GET /api/applications. Agents browse every application.
func (h *ApplicationHandler) List(c *gin.Context) {
	actor := CurrentActor(c)
	applications, err := h.facade.Applications(c.Request.Context(), actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := make([]dto.ApplicationResponse, 0, len(applications))
	for _, a := range applications {
		response = append(response, toApplicationResponse(a))
	}

	c.JSON(http.StatusOK, gin.H{"applications": response})
}

func toApplicationResponse(a model.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ApplicationID: a.ID,
		UserID:        a.UserID,
		Amount:        a.Amount,
		Tenure:        a.Tenure,
		RequestDate:   a.CreatedAt,
	}
}
