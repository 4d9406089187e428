package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/loandesk/internal/domain/errors"
	"github.com/polkiloo/loandesk/internal/server/http/dto"
)

// UserHandler manages user administration endpoints.
type UserHandler struct {
	facade UserFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	actor := CurrentActor(c)
	users, err := h.facade.Users(c.Request.Context(), actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, dto.UserResponse{ID: u.ID, Login: u.Login, Role: string(u.Role)})
	}

	c.JSON(http.StatusOK, gin.H{"users": response})
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid user id")
		return
	}

	actor := CurrentActor(c)
	profile, err := h.facade.UserProfile(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			fail(c, http.StatusNotFound, "user does not exist")
			return
		}
		respondDomainError(c, err)
		return
	}

	response := dto.UserProfileResponse{
		ID:           profile.User.ID,
		Login:        profile.User.Login,
		Role:         string(profile.User.Role),
		Applications: profile.ApplicationIDs,
		Loans:        profile.LoanIDs,
	}
	c.JSON(http.StatusOK, gin.H{"user": response})
}

// Promote handles PATCH /api/users/:id/promote.
func (h *UserHandler) Promote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid user id")
		return
	}

	actor := CurrentActor(c)
	if err := h.facade.PromoteUser(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			fail(c, http.StatusNotFound, "user does not exist")
			return
		}
		respondDomainError(c, err)
		return
	}

	ack(c, fmt.Sprintf("user %d is now an agent", id))
}

// Delete handles DELETE /api/users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid user id")
		return
	}

	actor := CurrentActor(c)
	if err := h.facade.DeleteUser(c.Request.Context(), actor, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			fail(c, http.StatusNotFound, "user does not exist")
			return
		}
		respondDomainError(c, err)
		return
	}

	ack(c, "user deleted")
}
