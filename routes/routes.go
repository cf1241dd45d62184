package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/IvanPareja1/profitness-app-sub003/controllers"
	"github.com/IvanPareja1/profitness-app-sub003/middlewares"
	"github.com/IvanPareja1/profitness-app-sub003/services"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	store := services.NewGormGoalStore(db)
	goalSvc := services.NewGoalService(store)
	achievementSvc := services.NewAchievementService(store, goalSvc)
	reportSvc := services.NewReportService(store)
	activitySvc := services.NewActivityLogService(db, achievementSvc)
	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db, goalSvc)
	hub := services.NewRealtimeHub()

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	goalCtl := controllers.NewGoalController(goalSvc, achievementSvc, reportSvc, hub)
	activityCtl := controllers.NewActivityLogController(activitySvc, hub)
	realtimeCtl := controllers.NewRealtimeController(hub)

	r := gin.Default()
	r.Use(middlewares.MonitorMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware(db))
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/profile", userCtl.UpdateProfile)
	}

	// Goal engine
	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware(db))
	{
		goals.GET("/today", goalCtl.GetTodayGoals)
		goals.PUT("", goalCtl.UpdateGoals)
		goals.PUT("/achievement", goalCtl.UpdateAchievement)
		goals.GET("/progress", goalCtl.GetProgress)
		goals.GET("/weekly-stats", goalCtl.GetWeeklyStats)
	}

	// Activity logger + realtime progress
	protected := r.Group("")
	protected.Use(middlewares.AuthMiddleware(db))
	{
		protected.PUT("/activity", activityCtl.UpdateDailyActivity)
		protected.GET("/ws", realtimeCtl.ProgressWS)
	}

	return r
}
