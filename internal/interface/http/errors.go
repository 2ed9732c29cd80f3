package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/internal/application"
	"github.com/oksasatya/student-planner-api/internal/domain/repository"
	"github.com/oksasatya/student-planner-api/pkg/response"
)

// writeError maps core and store errors onto the response envelope.
// Unknown errors are logged and reported without detail.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	var ce *repository.ConstraintError
	switch {
	case errors.Is(err, application.ErrTaskNotFound),
		errors.Is(err, application.ErrEntryNotFound),
		errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidUpdate):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrExportUnavailable):
		response.Error[any](c, http.StatusServiceUnavailable, err.Error(), nil)
	case errors.As(err, &ce):
		switch ce.Kind {
		case repository.ConstraintUnique:
			response.Error[any](c, http.StatusConflict, "record already exists", gin.H{"constraint": ce.Constraint})
		case repository.ConstraintForeignKey:
			response.Error[any](c, http.StatusBadRequest, "invalid reference", gin.H{"constraint": ce.Constraint})
		default:
			response.Error[any](c, http.StatusBadRequest, "constraint violated", gin.H{"constraint": ce.Constraint})
		}
	default:
		if logger != nil {
			logger.WithError(err).
				WithField("request_id", c.GetString("request_id")).
				WithField("path", c.FullPath()).
				Error("request failed")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// pathID returns the :id parameter, or false when it cannot name any record.
// Malformed ids are reported like missing ones.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}
