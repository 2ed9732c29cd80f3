package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-planner-api/internal/application"
	"github.com/oksasatya/student-planner-api/internal/domain/entity"
	"github.com/oksasatya/student-planner-api/internal/interface/middleware"
	"github.com/oksasatya/student-planner-api/pkg/helpers"
	"github.com/oksasatya/student-planner-api/pkg/response"
	"github.com/oksasatya/student-planner-api/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	Subject        string                 `json:"subject" binding:"required,notblank,max=255"`
	Title          string                 `json:"title" binding:"required,notblank,max=255"`
	Description    *string                `json:"description"`
	Deadline       *time.Time             `json:"deadline" binding:"required"`
	Priority       entity.Priority        `json:"priority" binding:"required,oneof=high medium low"`
	Status         entity.Status          `json:"status" binding:"omitempty,oneof=todo in-progress done"`
	IsRecurring    bool                   `json:"isRecurring"`
	RecurrenceType *entity.RecurrenceType `json:"recurrenceType" binding:"omitempty,oneof=daily weekly"`
}

// List GET /api/tasks?status&priority&startDate&endDate
func (h *TaskHandler) List(c *gin.Context) {
	f, details := parseTaskFilter(c)
	if details != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid filter", details)
		return
	}
	tasks, err := h.Svc.List(c.Request.Context(), middleware.UserID(c), f)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "tasks", gin.H{"count": len(tasks)})
}

// parseTaskFilter treats an empty query value like an absent one.
func parseTaskFilter(c *gin.Context) (entity.TaskFilter, map[string]string) {
	var (
		f       entity.TaskFilter
		details map[string]string
	)
	if v := c.Query("status"); v != "" {
		details = validation.Merge(details, validation.Var("status", v, "oneof=todo in-progress done"))
		s := entity.Status(v)
		f.Status = &s
	}
	if v := c.Query("priority"); v != "" {
		details = validation.Merge(details, validation.Var("priority", v, "oneof=high medium low"))
		p := entity.Priority(v)
		f.Priority = &p
	}
	if v := c.Query("startDate"); v != "" {
		t, err := helpers.ParseDateParam(v, false)
		if err != nil {
			details = validation.Merge(details, map[string]string{"startDate": err.Error()})
		}
		f.StartDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := helpers.ParseDateParam(v, true)
		if err != nil {
			details = validation.Merge(details, map[string]string{"endDate": err.Error()})
		}
		f.EndDate = &t
	}
	return f, details
}

// Overdue GET /api/tasks/overdue
func (h *TaskHandler) Overdue(c *gin.Context) {
	tasks, err := h.Svc.FindOverdue(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "overdue tasks", gin.H{"count": len(tasks)})
}

// Search GET /api/tasks/search?q&size
func (h *TaskHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if details := validation.Var("q", q, "notblank,max=200"); details != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", details)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	tasks, err := h.Svc.Search(c.Request.Context(), middleware.UserID(c), q, size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "search results", gin.H{"count": len(tasks)})
}

// Create POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), middleware.UserID(c), application.CreateTaskInput{
		Subject:        req.Subject,
		Title:          req.Title,
		Description:    req.Description,
		Deadline:       *req.Deadline,
		Priority:       req.Priority,
		Status:         req.Status,
		IsRecurring:    req.IsRecurring,
		RecurrenceType: req.RecurrenceType,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "task created", nil)
}

// Get GET /api/tasks/:id
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, h.Logger, application.ErrTaskNotFound)
		return
	}
	t, err := h.Svc.Get(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task", nil)
}

// Update PUT|PATCH /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, h.Logger, application.ErrTaskNotFound)
		return
	}
	var p entity.TaskPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if details := validateTaskPatch(p); details != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", details)
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), id, middleware.UserID(c), p)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task updated", nil)
}

// Delete DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		writeError(c, h.Logger, application.ErrTaskNotFound)
		return
	}
	t, err := h.Svc.Delete(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task deleted", nil)
}

const mustNotBeNull = "must not be null"

func validateTaskPatch(p entity.TaskPatch) map[string]string {
	var d map[string]string
	if p.Subject.Set {
		if p.Subject.Null {
			d = validation.Merge(d, map[string]string{"subject": mustNotBeNull})
		} else {
			d = validation.Merge(d, validation.Var("subject", p.Subject.Value, "notblank,max=255"))
		}
	}
	if p.Title.Set {
		if p.Title.Null {
			d = validation.Merge(d, map[string]string{"title": mustNotBeNull})
		} else {
			d = validation.Merge(d, validation.Var("title", p.Title.Value, "notblank,max=255"))
		}
	}
	if p.Deadline.Set && p.Deadline.Null {
		d = validation.Merge(d, map[string]string{"deadline": mustNotBeNull})
	}
	if p.Priority.Set {
		d = validation.Merge(d, validation.Var("priority", string(p.Priority.Value), "oneof=high medium low"))
	}
	if p.Status.Set {
		d = validation.Merge(d, validation.Var("status", string(p.Status.Value), "oneof=todo in-progress done"))
	}
	if p.IsRecurring.Set && p.IsRecurring.Null {
		d = validation.Merge(d, map[string]string{"isRecurring": mustNotBeNull})
	}
	if p.RecurrenceType.Set && p.RecurrenceType.Value != nil {
		d = validation.Merge(d, validation.Var("recurrenceType", string(*p.RecurrenceType.Value), "oneof=daily weekly"))
	}
	return d
}
