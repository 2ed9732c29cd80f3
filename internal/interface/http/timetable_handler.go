package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/internal/application"
	"github.com/oksasatya/student-planner-api/internal/domain/entity"
	"github.com/oksasatya/student-planner-api/internal/interface/middleware"
	"github.com/oksasatya/student-planner-api/pkg/response"
	"github.com/oksasatya/student-planner-api/pkg/validation"
)

type TimetableHandler struct {
	Svc    *application.TimetableService
	Logger *logrus.Logger
}

func NewTimetableHandler(svc *application.TimetableService, logger *logrus.Logger) *TimetableHandler {
	return &TimetableHandler{Svc: svc, Logger: logger}
}

// DayOfWeek is a pointer so that Sunday (0) passes "required".
type createEntryRequest struct {
	Subject   string  `json:"subject" binding:"required,notblank,max=255"`
	DayOfWeek *int    `json:"dayOfWeek" binding:"required,gte=0,lte=6"`
	StartTime string  `json:"startTime" binding:"required,hhmm"`
	EndTime   string  `json:"endTime" binding:"required,hhmm"`
	Location  *string `json:"location" binding:"omitempty,max=255"`
}

func (h *TimetableHandler) List(c *gin.Context) {
	entries, err := h.Svc.List(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, entries, "timetable", gin.H{"count": len(entries)})
}

func (h *TimetableHandler) Subjects(c *gin.Context) {
	subjects, err := h.Svc.Subjects(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, subjects, "subjects", nil)
}

func (h *TimetableHandler) Create(c *gin.Context) {
	var req createEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), application.CreateEntryInput{
		Subject:   req.Subject,
		DayOfWeek: *req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, e, "timetable entry created", nil)
}

func (h *TimetableHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, h.Logger, application.ErrEntryNotFound)
		return
	}
	e, err := h.Svc.Get(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "timetable entry", nil)
}

func (h *TimetableHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, h.Logger, application.ErrEntryNotFound)
		return
	}
	var p entity.TimetablePatch
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if details := validateTimetablePatch(p); details != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", details)
		return
	}
	e, err := h.Svc.Update(c.Request.Context(), id, middleware.UserID(c), p)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "timetable entry updated", nil)
}

func (h *TimetableHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, h.Logger, application.ErrEntryNotFound)
		return
	}
	e, err := h.Svc.Delete(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, e, "timetable entry deleted", nil)
}

func validateTimetablePatch(p entity.TimetablePatch) map[string]string {
	var d map[string]string
	if p.Subject.Set {
		if p.Subject.Null {
			d = validation.Merge(d, map[string]string{"subject": mustNotBeNull})
		} else {
			d = validation.Merge(d, validation.Var("subject", p.Subject.Value, "notblank,max=255"))
		}
	}
	if p.DayOfWeek.Set {
		if p.DayOfWeek.Null {
			d = validation.Merge(d, map[string]string{"dayOfWeek": mustNotBeNull})
		} else {
			d = validation.Merge(d, validation.Var("dayOfWeek", p.DayOfWeek.Value, "gte=0,lte=6"))
		}
	}
	if p.StartTime.Set {
		d = validation.Merge(d, validation.Var("startTime", p.StartTime.Value, "hhmm"))
	}
	if p.EndTime.Set {
		d = validation.Merge(d, validation.Var("endTime", p.EndTime.Value, "hhmm"))
	}
	if p.Location.Set && p.Location.Value != nil {
		d = validation.Merge(d, validation.Var("location", *p.Location.Value, "max=255"))
	}
	return d
}
