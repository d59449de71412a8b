package config

import "os"

// Settings menampung seluruh konfigurasi dari environment.
type Settings struct {
	Port    string
	GinMode string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	LogLevel string

	// SMTP settings untuk notifikasi email (belum dipakai di code path manapun)
	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPassword    string
	EmailsFromEmail string
	EmailsFromName  string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load membaca settings dari environment dengan default yang aman untuk dev.
func Load() *Settings {
	return &Settings{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     getEnv("DB_NAME", "restaurant_booking"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		SMTPHost:        getEnv("SMTP_HOST", ""),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		EmailsFromEmail: getEnv("EMAILS_FROM_EMAIL", ""),
		EmailsFromName:  getEnv("EMAILS_FROM_NAME", ""),
	}
}
