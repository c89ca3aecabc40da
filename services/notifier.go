// services/notifier.go
package services

import (
	"fmt"
	"log"
	"os"
	"repairpro-backend/models"
	"repairpro-backend/utils"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// NotificationService sends WhatsApp/SMS messages for booking events: an
// alert to the shop when a new request arrives, and a daily reminder sweep
// for confirmed appointments. Without Twilio credentials it degrades to a
// no-op so local development does not need an account.
type NotificationService struct {
	db      *gorm.DB
	client  *twilio.RestClient
	enabled bool
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	if accountSid == "" || authToken == "" {
		log.Println("Twilio credentials not set, notifications disabled")
		return &NotificationService{db: db}
	}

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		enabled: true,
	}
}

// StartScheduler runs the reminder sweep every day at 9 AM.
func (s *NotificationService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Notification scheduler started")
}

// SendBookingAlert tells the shop's WhatsApp number about a new appointment
// request. The number lives in settings so staff can change it without a
// redeploy. Failures are logged, never surfaced to the customer.
func (s *NotificationService) SendBookingAlert(appt models.Appointment) {
	var setting models.Setting
	if err := s.db.Where("key = ?", models.SettingWhatsAppNumber).First(&setting).Error; err != nil {
		log.Printf("Booking alert skipped, no %s setting: %v", models.SettingWhatsAppNumber, err)
		return
	}
	if setting.Value == "" {
		return
	}

	message := fmt.Sprintf(
		"New appointment request: %s, %s at %s (%s). Customer: %s, %s",
		appt.ServiceName, appt.AppointmentDate, appt.AppointmentTime,
		appt.LocationType, appt.CustomerName, appt.CustomerPhone,
	)

	s.send(&appt, "booking_alert", setting.Value, message)
}

// SendDailyReminders messages every customer with a confirmed appointment
// today.
func (s *NotificationService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	today := utils.DateString(time.Now())

	var appointments []models.Appointment
	if err := s.db.Where("appointment_date = ? AND status = ?", today, models.StatusConfirmed).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch today's appointments: %v", err)
		return
	}

	for _, appt := range appointments {
		message := fmt.Sprintf(
			"Hi %s, a reminder of your %s appointment today at %s. See you soon!",
			appt.CustomerName, appt.ServiceName, appt.AppointmentTime,
		)
		s.send(&appt, "appointment_reminder", appt.CustomerPhone, message)
	}

	log.Println("Daily reminder processing completed")
}

func (s *NotificationService) send(appt *models.Appointment, kind, phone, message string) {
	if !s.enabled {
		return
	}

	// WhatsApp needs an E.164 number; anything else goes out as SMS
	channel := "sms"
	to := phone
	if strings.HasPrefix(phone, "+") {
		to = "whatsapp:" + phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send %s to %s: %v", kind, phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("%s sent to %s, SID: %s", kind, phone, *resp.Sid)
	} else {
		log.Printf("%s sent to %s, but no SID returned", kind, phone)
	}

	entry := models.NotificationLog{
		Kind:         kind,
		Recipient:    phone,
		Message:      message,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if appt != nil {
		id := appt.ID
		entry.AppointmentID = &id
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log %s for %s: %v", kind, phone, err)
	}
}
