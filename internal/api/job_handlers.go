package api

import (
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/careerboost/internal/services"
	"net/http"
)

func (h *handlers) listJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, jobs)
}

func (h *handlers) getJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	job, err := h.Jobs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, job)
}

func (h *handlers) createJob(c *gin.Context) {
	var req services.JobInput
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.Jobs.Create(c.Request.Context(), callerOf(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, job)
}

func (h *handlers) updateJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req services.JobPatch
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.Jobs.Update(c.Request.Context(), id, callerOf(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, job)
}

func (h *handlers) deleteJob(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Jobs.Delete(c.Request.Context(), id, callerOf(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}
