package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/task-management/internal/models"
)

func (h *handlerImpl) HandleGetStatuses(c *gin.Context) {
	statuses, err := h.tasks.GetStatuses(c.Request.Context())
	if err != nil {
		abort(c, newServiceError(err))
		return
	}
	c.JSON(http.StatusOK, nonNil(statuses))
}

func (h *handlerImpl) HandleGetPriorities(c *gin.Context) {
	priorities, err := h.tasks.GetPriorities(c.Request.Context())
	if err != nil {
		abort(c, newServiceError(err))
		return
	}
	c.JSON(http.StatusOK, nonNil(priorities))
}

func nonNil(lookups []*models.Lookup) []*models.Lookup {
	if lookups == nil {
		return []*models.Lookup{}
	}
	return lookups
}
