package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/task-management/internal/services"
)

type Handler interface {
	HandleRequestLogger(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)

	HandleArchiveTasks(c *gin.Context)
	HandleGetArchivedTasks(c *gin.Context)

	HandleGetStatuses(c *gin.Context)
	HandleGetPriorities(c *gin.Context)
}

type handlerImpl struct {
	logger zerolog.Logger
	tasks  services.TaskService
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
) Handler {
	return &handlerImpl{
		logger: logger,
		tasks:  taskService,
	}
}

// RegisterRoutes mounts the v1 API under router.
func RegisterRoutes(router gin.IRouter, h Handler) {
	router = router.Group("/api/v1", h.HandleRequestLogger)

	tasksRouter := router.Group("/tasks")
	tasksRouter.POST("", h.HandleCreateTask)
	tasksRouter.GET("", h.HandleGetTasks)
	tasksRouter.PUT("", h.HandleUpdateTask)
	tasksRouter.DELETE("/:id", h.HandleDeleteTask)
	tasksRouter.POST("/archive", h.HandleArchiveTasks)
	tasksRouter.GET("/archive", h.HandleGetArchivedTasks)

	router.GET("/statuses", h.HandleGetStatuses)
	router.GET("/priorities", h.HandleGetPriorities)
}
