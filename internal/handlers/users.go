package handlers

import (
	"errors"
	"net/http"

	"daily_diet/internal/service"

	"github.com/gin-gonic/gin"
)

// registerRequest is the registration payload.
type registerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Address string  `json:"address"`
	Weight  float64 `json:"weight"`
	Height  float64 `json:"height"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Register user
// @Description  Creates an account and sets the session cookie used by every /meals call.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body   registerRequest  true  "Registration payload"
// @Success      201   {object}  map[string]string  "id"
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "email already registered"
// @Router       /users [post]
func (h *Handler) registerUser(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	user, token, err := h.services.Accounts.Register(c.Request.Context(), service.RegisterInput{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		Weight:  input.Weight,
		Height:  input.Height,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRegisterUser, "user_register_failed", err, "email", input.Email)
		return
	}

	// No Max-Age: the session is permanent once issued. Secure is off
	// because TLS terminates upstream of this service.
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
	c.JSON(http.StatusCreated, gin.H{"id": user.ID})
}
