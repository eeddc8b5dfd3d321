package api

import (
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/careerboost/internal/services"
	"net/http"
)

func (h *handlers) createProfile(c *gin.Context) {
	var req services.ProfileInput
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.Profiles.Create(c.Request.Context(), callerOf(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, profile)
}

func (h *handlers) getMyProfile(c *gin.Context) {
	profile, err := h.Profiles.GetMine(c.Request.Context(), callerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, profile)
}

func (h *handlers) updateMyProfile(c *gin.Context) {
	var req services.ProfilePatch
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.Profiles.UpdateMine(c.Request.Context(), callerOf(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, profile)
}

func (h *handlers) deleteMyProfile(c *gin.Context) {
	if err := h.Profiles.DeleteMine(c.Request.Context(), callerOf(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *handlers) getProfileByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	profile, err := h.Profiles.GetByUser(c.Request.Context(), userID, callerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, profile)
}

func (h *handlers) createCompanyProfile(c *gin.Context) {
	var req services.CompanyProfileInput
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.CompanyProfiles.Create(c.Request.Context(), callerOf(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, profile)
}

func (h *handlers) getMyCompanyProfile(c *gin.Context) {
	profile, err := h.CompanyProfiles.GetMine(c.Request.Context(), callerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, profile)
}

func (h *handlers) updateMyCompanyProfile(c *gin.Context) {
	var req services.CompanyProfilePatch
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.CompanyProfiles.UpdateMine(c.Request.Context(), callerOf(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, profile)
}

func (h *handlers) getCompanyProfileByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	profile, err := h.CompanyProfiles.GetByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, profile)
}
