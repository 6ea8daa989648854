package api

import (
	"net/http"

	_ "clockalert/docs"
	"clockalert/internal/commands"
	"clockalert/internal/events"
	"clockalert/internal/handlers"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cmds *commands.Commands, hub *events.Hub) {
	v1 := r.Group("/v1")
	{
		v1.GET("/alarms", func(c *gin.Context) {
			handlers.ListAlarmsHandler(c, cmds)
		})

		v1.POST("/alarms", func(c *gin.Context) {
			handlers.AddAlarmHandler(c, cmds)
		})

		v1.DELETE("/alarms/:id", func(c *gin.Context) {
			handlers.RemoveAlarmHandler(c, cmds)
		})

		// alarm_triggered stream
		v1.GET("/events", hub.ServeWS)

		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})
	}

	// wildcard first, then the bare path, to avoid gin routing conflicts
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/swagger/index.html")
	})
}
