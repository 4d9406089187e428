package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/loandesk/internal/domain/errors"
	"github.com/polkiloo/loandesk/internal/domain/model"
	"github.com/polkiloo/loandesk/internal/server/http/dto"
	"github.com/polkiloo/loandesk/internal/server/http/middleware"
)

// CurrentActor extracts authenticated caller identity from context.
func CurrentActor(c *gin.Context) model.Actor {
	val, ok := c.Get(middleware.ActorContextKey)
	if !ok {
		return model.Actor{}
	}
	actor, _ := val.(model.Actor)
	return actor
}

func ack(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{OK: true, Message: message})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.MessageResponse{OK: false, Message: message})
}

// respondDomainError maps domain errors onto HTTP statuses and the structured
// message body. Authorization denials stay generic; internal failures collapse
// into a single processing-error message.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		fail(c, http.StatusBadRequest, "invalid input")
	case errors.Is(err, domainErrors.ErrPermissionDenied):
		fail(c, http.StatusForbidden, "cannot perform the action")
	case errors.Is(err, domainErrors.ErrInvalidApplication):
		fail(c, http.StatusNotFound, "invalid application")
	case errors.Is(err, domainErrors.ErrInvalidLoan):
		fail(c, http.StatusNotFound, "invalid loan id")
	case errors.Is(err, domainErrors.ErrNotFound):
		fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, domainErrors.ErrAlreadyRequested):
		fail(c, http.StatusConflict, "loan already requested for this application")
	case errors.Is(err, domainErrors.ErrAlreadyApproved):
		fail(c, http.StatusConflict, "loan already approved")
	case errors.Is(err, domainErrors.ErrCannotApprove):
		fail(c, http.StatusConflict, "cannot approve loan")
	case errors.Is(err, domainErrors.ErrLoanLocked):
		fail(c, http.StatusConflict, "cannot edit loan")
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		fail(c, http.StatusConflict, "already exists")
	default:
		fail(c, http.StatusInternalServerError, "there was an error processing your request")
	}
}
