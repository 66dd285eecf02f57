// Package config loads runtime configuration from environment variables
// with sensible defaults for local development.
package config

import (
	"github.com/spf13/viper"

	"chocolatudo/internal/services"
)

// Config holds all runtime settings.
type Config struct {
	AppPort string

	// Outbound email. When SMTPHost is empty and RabbitMQURL is set,
	// emails are published to the queue; with neither, they are logged.
	RabbitMQURL  string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// Empty secret selects the static development verifier.
	RecaptchaSecret string

	Contact services.ContactConfig

	LogFile string
}

// Load reads configuration from the environment.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("RECAPTCHA_SECRET", "")
	viper.SetDefault("RECAPTCHA_MIN_SCORE", 0.5)
	viper.SetDefault("CONTACT_RECIPIENT_EMAIL", "contato@chocolatudo.com.br")
	viper.SetDefault("CONTACT_SENDER_EMAIL", "noreply@chocolatudo.com.br")
	viper.SetDefault("CONTACT_SUBJECT_PREFIX", "Contato Chocolatudo")
	viper.SetDefault("CONTACT_AUTO_REPLY_SUBJECT", "Recebemos sua mensagem - Chocolatudo")
	viper.SetDefault("CONTACT_RESPONSE_TIME_HOURS", 24)
	viper.SetDefault("LOG_FILE", "")
	viper.AutomaticEnv()

	return &Config{
		AppPort:         viper.GetString("APP_PORT"),
		RabbitMQURL:     viper.GetString("RABBITMQ_URL"),
		SMTPHost:        viper.GetString("SMTP_HOST"),
		SMTPPort:        viper.GetInt("SMTP_PORT"),
		SMTPUsername:    viper.GetString("SMTP_USERNAME"),
		SMTPPassword:    viper.GetString("SMTP_PASSWORD"),
		RecaptchaSecret: viper.GetString("RECAPTCHA_SECRET"),
		Contact: services.ContactConfig{
			RecipientEmail:     viper.GetString("CONTACT_RECIPIENT_EMAIL"),
			SenderEmail:        viper.GetString("CONTACT_SENDER_EMAIL"),
			EmailSubjectPrefix: viper.GetString("CONTACT_SUBJECT_PREFIX"),
			AutoReplySubject:   viper.GetString("CONTACT_AUTO_REPLY_SUBJECT"),
			ResponseTimeHours:  viper.GetInt("CONTACT_RESPONSE_TIME_HOURS"),
			MinRecaptchaScore:  viper.GetFloat64("RECAPTCHA_MIN_SCORE"),
		},
		LogFile: viper.GetString("LOG_FILE"),
	}
}
