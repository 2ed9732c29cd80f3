package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/internal/application"
	"github.com/oksasatya/student-planner-api/internal/interface/middleware"
	"github.com/oksasatya/student-planner-api/pkg/response"
)

type ExportHandler struct {
	Svc    *application.ExportService
	Logger *logrus.Logger
}

func NewExportHandler(svc *application.ExportService, logger *logrus.Logger) *ExportHandler {
	return &ExportHandler{Svc: svc, Logger: logger}
}

// Export POST /api/export
func (h *ExportHandler) Export(c *gin.Context) {
	res, err := h.Svc.Export(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, res, "export written", nil)
}

// Banner GET /
func Banner(name, version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": name + " is running", "version": version})
	}
}
