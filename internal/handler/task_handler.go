package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studyhq/studyplan-backend/internal/middleware"
	"github.com/studyhq/studyplan-backend/internal/model"
	"github.com/studyhq/studyplan-backend/internal/response"
	"github.com/studyhq/studyplan-backend/internal/service"
	"github.com/studyhq/studyplan-backend/internal/validator"
)

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListForSubject godoc
// GET /api/v1/subjects/:id/tasks
// Tasks come back ordered: PENDING before COMPLETED, then due date
// ascending, undated tasks last within each status group.
func (h *TaskHandler) ListForSubject(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	tasks, err := h.taskService.ListForSubject(c.Request.Context(), claims.Email, subjectID)
	if err != nil {
		failFromService(c, err)
		return
	}

	if tasks == nil {
		tasks = []model.Task{}
	}

	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

// Create godoc
// POST /api/v1/subjects/:id/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	subjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateTaskRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), claims.Email, subjectID, &req)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"task": task})
}

// UpdateStatus godoc
// PUT /api/v1/tasks/:task_id
// Status is the only mutable field after creation.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateTaskStatusRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	task, err := h.taskService.UpdateStatus(c.Request.Context(), claims.Email, taskID, req.Status)
	if err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"task": task})
}

// Delete godoc
// DELETE /api/v1/tasks/:task_id
func (h *TaskHandler) Delete(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), claims.Email, taskID); err != nil {
		failFromService(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ok": true})
}
