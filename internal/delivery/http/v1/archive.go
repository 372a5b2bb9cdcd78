package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/task-management/internal/models"
)

type archiveTasksResponse struct {
	ArchivedTasksCount int64  `json:"archived_tasks_count"`
	Message            string `json:"message"`
}

func (h *handlerImpl) HandleArchiveTasks(c *gin.Context) {
	count, err := h.tasks.ArchiveCompletedTasks(c.Request.Context())
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	message := "no completed tasks to archive"
	if count > 0 {
		message = fmt.Sprintf("archived %d tasks", count)
	}
	c.JSON(http.StatusOK, archiveTasksResponse{
		ArchivedTasksCount: count,
		Message:            message,
	})
}

func (h *handlerImpl) HandleGetArchivedTasks(c *gin.Context) {
	archived, err := h.tasks.GetArchivedTasks(c.Request.Context())
	if err != nil {
		abort(c, newServiceError(err))
		return
	}

	if archived == nil {
		archived = []*models.ArchivedTask{}
	}
	c.JSON(http.StatusOK, archived)
}
