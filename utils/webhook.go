package utils

import (
	"log"
	"time"

	"learnhub/config"
	"learnhub/models"

	"github.com/go-resty/resty/v2"
)

// NotifyRegistration posts new-signup details to the configured webhook.
// Meant to run in a goroutine: registration must never block or fail on the
// external endpoint, so errors are only logged.
func NotifyRegistration(user models.User) {
	webhookURL := config.AppConfig.RegisterWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		}).
		Post(webhookURL)
	if err != nil {
		log.Printf("Error calling registration webhook: %v", err)
		return
	}
	if resp.IsError() {
		log.Printf("Registration webhook failed: %s", resp.Status())
		return
	}
	log.Printf("User synced successfully to webhook: %s", user.Email)
}
