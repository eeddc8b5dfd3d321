package api

import (
	"github.com/gin-gonic/gin"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"net/http"
)

const callerKey = "caller"

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).
			Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			errorBody{Error: "InternalError", Message: "internal server error"})
		return
	}
	c.AbortWithStatusJSON(statusOf(appErr.Kind), errorBody{Error: string(appErr.Kind), Message: appErr.Message})
}

func statusOf(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidInput:
		return http.StatusBadRequest
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, apperrors.InvalidInput("invalid request body: %v", err))
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := cast.ToUintE(c.Param(name))
	if err != nil || id == 0 {
		respondError(c, apperrors.InvalidInput("invalid %s", name))
		return 0, false
	}
	return id, true
}

func callerOf(c *gin.Context) entities.Caller {
	caller, _ := c.Get(callerKey)
	return caller.(entities.Caller)
}
