package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"taskapi/internal/apperrors"
	"taskapi/internal/models"
	"taskapi/internal/services"
	"taskapi/internal/validation"
)

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req validation.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debugf("[task][create][bind] %v", err)
		abortWithError(c, apperrors.NewValidation(apperrors.FieldError{
			Field: "body", Message: "request body must be valid JSON",
		}))
		return
	}

	task, vErr := validation.ValidateCreate(req)
	if vErr != nil {
		abortWithError(c, vErr)
		return
	}

	created, err := h.service.Create(c.Request.Context(), task)
	if err != nil {
		abortWithError(c, err)
		return
	}
	log.Debugf("[task][create][ok] id=%s title=%q", created.ID, created.Title)
	respondData(c, http.StatusCreated, created)
}

// GET /api/tasks/:id
func (h *TaskHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if !validation.IsTaskID(id) {
		abortWithError(c, apperrors.InvalidID())
		return
	}

	task, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if task == nil {
		abortWithError(c, apperrors.ErrTaskNotFound)
		return
	}
	respondData(c, http.StatusOK, task)
}

// GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	params := validation.ListTasksParams{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Limit:    c.Query("limit"),
		Offset:   c.Query("offset"),
	}

	q, vErr := validation.ValidateListQuery(params)
	if vErr != nil {
		abortWithError(c, vErr)
		return
	}

	tasks, err := h.service.List(c.Request.Context(), q.Filter, q.Limit, q.Offset)
	if err != nil {
		abortWithError(c, err)
		return
	}
	log.Debugf("[task][list][ok] count=%d", len(tasks))
	respondList(c, tasks, models.ListMeta{Limit: q.Limit, Offset: q.Offset, Count: len(tasks)})
}

// PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !validation.IsTaskID(id) {
		abortWithError(c, apperrors.InvalidID())
		return
	}

	var req validation.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Debugf("[task][update][bind] %v", err)
		abortWithError(c, apperrors.NewValidation(apperrors.FieldError{
			Field: "body", Message: "request body must be valid JSON",
		}))
		return
	}

	upd, vErr := validation.ValidateUpdate(req)
	if vErr != nil {
		abortWithError(c, vErr)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, upd)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if updated == nil {
		abortWithError(c, apperrors.ErrTaskNotFound)
		return
	}
	log.Debugf("[task][update][ok] id=%s", id)
	respondData(c, http.StatusOK, updated)
}

// DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !validation.IsTaskID(id) {
		abortWithError(c, apperrors.InvalidID())
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if deleted == nil {
		abortWithError(c, apperrors.ErrTaskNotFound)
		return
	}
	log.Debugf("[task][delete][ok] id=%s", id)
	// Last state of the row doubles as the existence proof.
	respondData(c, http.StatusOK, deleted)
}
