package api

import (
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/careerboost/internal/services"
	"net/http"
)

func (h *handlers) listSkills(c *gin.Context) {
	skills, err := h.Skills.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, skills)
}

func (h *handlers) getSkill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	skill, err := h.Skills.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, skill)
}

func (h *handlers) createSkill(c *gin.Context) {
	var req services.SkillInput
	if !bindJSON(c, &req) {
		return
	}
	skill, err := h.Skills.Create(c.Request.Context(), callerOf(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, skill)
}

func (h *handlers) updateSkill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.SkillInput
	if !bindJSON(c, &req) {
		return
	}
	skill, err := h.Skills.Update(c.Request.Context(), id, callerOf(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, skill)
}

func (h *handlers) deleteSkill(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Skills.Delete(c.Request.Context(), id, callerOf(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}
