package api

import (
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/careerboost/internal/metrics"
	"github.com/maxaizer/careerboost/internal/services"
	"github.com/maxaizer/careerboost/internal/skills"
	"net/http"
)

// matchRequest keeps loosely typed elements; a missing or null list stays nil.
type matchRequest struct {
	ProfileSkills []any `json:"profileSkills"`
	JobSkills     []any `json:"jobSkills"`
}

func (h *handlers) match(c *gin.Context) {
	var req matchRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.Matching.Match(coerce(req.ProfileSkills), coerce(req.JobSkills))
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.MatchScore.Observe(float64(result.MatchPercent))
	respond(c, http.StatusOK, result)
}

func (h *handlers) generateBio(c *gin.Context) {
	var req services.BioInput
	if !bindJSON(c, &req) {
		return
	}
	bio, err := h.Bio.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, bio)
}

func coerce(raw []any) []string {
	if raw == nil {
		return nil
	}
	return skills.Coerce(raw)
}
