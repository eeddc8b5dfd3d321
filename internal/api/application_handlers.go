package api

import (
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/spf13/cast"
	"net/http"
)

type applyRequest struct {
	JobID            any    `json:"jobId"`
	MotivationLetter string `json:"motivationLetter"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *handlers) apply(c *gin.Context) {
	var req applyRequest
	if !bindJSON(c, &req) {
		return
	}
	jobID, err := cast.ToUintE(req.JobID)
	if err != nil || jobID == 0 {
		respondError(c, apperrors.InvalidInput("jobId is required"))
		return
	}

	application, err := h.Applications.Apply(c.Request.Context(), callerOf(c), jobID, req.MotivationLetter)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, application)
}

func (h *handlers) listMyApplications(c *gin.Context) {
	applications, err := h.Applications.ListMine(c.Request.Context(), callerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, applications)
}

func (h *handlers) listJobApplications(c *gin.Context) {
	jobID, ok := pathID(c, "jobId")
	if !ok {
		return
	}
	applications, err := h.Applications.ListForJob(c.Request.Context(), jobID, callerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, applications)
}

func (h *handlers) updateApplicationStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !bindJSON(c, &req) {
		return
	}
	application, err := h.Applications.UpdateStatus(c.Request.Context(), id, req.Status, callerOf(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, application)
}

func (h *handlers) withdrawApplication(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Applications.Withdraw(c.Request.Context(), id, callerOf(c)); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"id": id})
}
