package handlers

import (
	"net/http"
	"strconv"

	"clockalert/internal/commands"

	"github.com/gin-gonic/gin"
)

type AddAlarmRequest struct {
	Time string `json:"time" binding:"required" example:"07:30:00"`
}

// @Summary Add alarm
// @Description Store a new alarm at an HH:MM:SS local time. Store failures (such as a duplicate time) are logged by the daemon and not reported.
// @Tags alarms
// @Accept json
// @Produce json
// @Param body body AddAlarmRequest true "alarm time"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /v1/alarms [post]
func AddAlarmHandler(c *gin.Context, cmds *commands.Commands) {
	var req AddAlarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmds.AddAlarm(req.Time)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary Remove alarm
// @Description Delete an alarm by id. Unknown ids are ignored.
// @Tags alarms
// @Produce json
// @Param id path int true "alarm id"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Router /v1/alarms/{id} [delete]
func RemoveAlarmHandler(c *gin.Context, cmds *commands.Commands) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alarm id"})
		return
	}
	cmds.RemoveAlarm(id)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// @Summary List alarms
// @Description List alarms ordered by time. A storage failure yields an empty list.
// @Tags alarms
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/alarms [get]
func ListAlarmsHandler(c *gin.Context, cmds *commands.Commands) {
	c.JSON(http.StatusOK, gin.H{"alarms": cmds.ListAlarms()})
}
