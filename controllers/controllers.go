package controllers

import "repairpro-backend/services"

// notifier is optional; handlers skip alerts when it was never wired up.
var notifier *services.NotificationService

// SetNotifier hands controllers the notification service built in main.
func SetNotifier(n *services.NotificationService) {
	notifier = n
}
