package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/task-management/internal/models"
)

type taskRequest struct {
	ID          int64        `json:"task_id"`
	Name        *string      `json:"task_name"`
	Description *string      `json:"task_description"`
	DateAdded   *pgtype.Date `json:"dateadded" binding:"required"`
	Deadline    *pgtype.Date `json:"deadlinedate" binding:"required"`
	IsCompleted bool         `json:"iscompleted"`
	StatusID    int32        `json:"statusid" binding:"required"`
	PriorityID  int32        `json:"priorityid" binding:"required"`
}

// checkDates rejects null and infinite dates, which the binding accepts.
func (r *taskRequest) checkDates() error {
	if !models.IsCalendarDate(*r.DateAdded) || !models.IsCalendarDate(*r.Deadline) {
		return errInvalidDate
	}
	return nil
}

func (r *taskRequest) toModel() *models.Task {
	return &models.Task{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		DateAdded:   *r.DateAdded,
		Deadline:    *r.Deadline,
		IsCompleted: r.IsCompleted,
		StatusID:    r.StatusID,
		PriorityID:  r.PriorityID,
	}
}

type createTaskResponse struct {
	TaskID  int64  `json:"task_id"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}
	err = req.checkDates()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("invalid task dates")
		abort(c, newBadRequestError(err.Error()))
		return
	}

	// The identifier is always generated by the store.
	req.ID = 0

	taskID, err := h.tasks.CreateTask(c.Request.Context(), req.toModel())
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, createTaskResponse{
		TaskID:  taskID,
		Message: "task created",
	})
}

func (h *handlerImpl) HandleGetTasks(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	var statusID int32
	if status := c.Query("status"); status != "" {
		parsed, err := strconv.ParseInt(status, 10, 32)
		if err != nil {
			logger.Error().
				Err(err).
				Str("status", status).
				Msg("invalid status query")
			abort(c, newBadRequestError(errInvalidStatusID.Error()))
			return
		}
		statusID = int32(parsed)
	}

	tasks, err := h.tasks.GetTasks(c.Request.Context(), statusID)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	if tasks == nil {
		tasks = []*models.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	var req taskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}
	err = req.checkDates()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("invalid task dates")
		abort(c, newBadRequestError(err.Error()))
		return
	}
	if req.ID <= 0 {
		logger.Error().
			Int64("task_id", req.ID).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return
	}

	err = h.tasks.UpdateTask(c.Request.Context(), req.toModel())
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("task %d updated", req.ID),
	})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	logger := zerolog.Ctx(c.Request.Context())

	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error().
			Err(err).
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return
	}

	err = h.tasks.DeleteTask(c.Request.Context(), taskID)
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("task %d deleted", taskID),
	})
}
