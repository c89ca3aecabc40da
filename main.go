package main

import (
	"fmt"
	"log"
	"os"
	"repairpro-backend/config"
	"repairpro-backend/controllers"
	"repairpro-backend/models"
	"repairpro-backend/routes"
	"repairpro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Profile{},
		&models.Service{},
		&models.Appointment{},
		&models.Review{},
		&models.BlockedSlot{},
		&models.Setting{},
		&models.SiteContent{},
		&models.NotificationLog{},
	)

	seedSettings()
	bootstrapAdmin()
}

func main() {
	notifier := services.NewNotificationService(config.DB)
	notifier.StartScheduler()
	controllers.SetNotifier(notifier)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// seedSettings makes sure the settings the site reads always exist.
func seedSettings() {
	description := "WhatsApp number shown on the contact page and used for booking alerts"
	var count int64
	config.DB.Model(&models.Setting{}).
		Where("key = ?", models.SettingWhatsAppNumber).Count(&count)
	if count == 0 {
		config.DB.Create(&models.Setting{
			Key:         models.SettingWhatsAppNumber,
			Value:       "",
			Description: &description,
		})
	}
}

// bootstrapAdmin promotes the profile named by BOOTSTRAP_ADMIN_EMAIL. This is
// the only way the first admin comes to exist; after that, admins promote
// each other through the console.
func bootstrapAdmin() {
	email := os.Getenv("BOOTSTRAP_ADMIN_EMAIL")
	if email == "" {
		return
	}

	result := config.DB.Model(&models.Profile{}).
		Where("email = ? AND role <> ?", email, models.RoleAdmin).
		Update("role", models.RoleAdmin)
	if result.Error != nil {
		log.Printf("Failed to bootstrap admin %s: %v", email, result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("Bootstrapped admin role for %s", email)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
