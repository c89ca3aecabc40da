package routes

import (
	"os"
	"repairpro-backend/config"
	"repairpro-backend/controllers"
	"repairpro-backend/utils"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// Public routes: the marketing site and the booking/review forms
	api := r.Group("/api")
	{
		api.GET("/services", controllers.GetServices)
		api.GET("/services/:id", controllers.GetService)

		api.GET("/availability", controllers.GetAvailability)
		api.POST("/appointments", controllers.CreateAppointment)

		api.GET("/reviews", controllers.GetApprovedReviews)
		api.POST("/reviews", controllers.CreateReview)

		api.GET("/content/:section", controllers.GetSiteContent)
		api.GET("/settings/:key", controllers.GetSetting)
	}

	// Admin console: everything behind the role gate
	admin := api.Group("/admin")
	admin.Use(utils.AuthMiddleware(), utils.RequireAdmin())
	{
		appointments := admin.Group("/appointments")
		{
			appointments.GET("", controllers.GetAppointments)
			appointments.GET("/:id", controllers.GetAppointment)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		reviews := admin.Group("/reviews")
		{
			reviews.GET("", controllers.GetAllReviews)
			reviews.PUT("/:id", controllers.UpdateReview)
			reviews.DELETE("/:id", controllers.DeleteReview)
		}

		slots := admin.Group("/blocked-slots")
		{
			slots.GET("", controllers.GetBlockedSlots)
			slots.POST("", controllers.CreateBlockedSlot)
			slots.DELETE("/:id", controllers.DeleteBlockedSlot)
		}

		services := admin.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
		}

		content := admin.Group("/content")
		{
			content.GET("", controllers.GetAllSiteContent)
			content.PUT("/:section", controllers.UpdateSiteContent)
		}

		settings := admin.Group("/settings")
		{
			settings.GET("", controllers.GetSettings)
			settings.PUT("/:key", controllers.UpdateSetting)
		}

		users := admin.Group("/users")
		{
			users.GET("", controllers.GetUsers)
			users.PUT("/:id", controllers.UpdateUser)
		}

		admin.GET("/statistics", controllers.GetStatistics)
	}

	return r
}
