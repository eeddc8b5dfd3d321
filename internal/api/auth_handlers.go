package api

import (
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/careerboost/internal/services"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *handlers) register(c *gin.Context) {
	var req services.RegisterInput
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.Accounts.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, result)
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, result)
}

func (h *handlers) me(c *gin.Context) {
	user, err := h.Accounts.Me(c.Request.Context(), callerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, user)
}
