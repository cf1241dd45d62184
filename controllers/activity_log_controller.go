package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IvanPareja1/profitness-app-sub003/services"
)

type ActivityLogController struct {
	activity *services.ActivityLogService
	hub      *services.RealtimeHub
}

func NewActivityLogController(activity *services.ActivityLogService, hub *services.RealtimeHub) *ActivityLogController {
	return &ActivityLogController{activity: activity, hub: hub}
}

// UpdateDailyActivity records hydration and exercise totals for a day
// (default: today) and mirrors them into the achievement ledger.
func (ctl *ActivityLogController) UpdateDailyActivity(c *gin.Context) {
	var body struct {
		Date      string  `json:"date"`
		Hydration float64 `json:"hydration"`
		Exercise  float64 `json:"exercise"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := timeNowUTC()
	if body.Date != "" {
		parsed, err := parseDateString(body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	userID := currentUserID(c)
	rec, err := ctl.activity.UpsertDailyActivity(userID, date, body.Hydration, body.Exercise)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.hub.BroadcastAchievement(userID, rec)
	c.JSON(http.StatusOK, gin.H{"achievement": rec})
}
