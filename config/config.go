package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config contient la configuration principale de l'API.
type Config struct {
	Env         string
	Port        string
	JWTSecret   string
	DatabaseURL string
	PublicDir   string
}

// Load charge la configuration à partir des variables d'environnement,
// après un éventuel .env local.
func Load() Config {
	loadEnvIfExists()

	cfg := Config{
		Env:         getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "3030"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme-super-secret"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		PublicDir:   getEnv("PUBLIC_DIR", "./public"),
	}

	if cfg.JWTSecret == "changeme-super-secret" {
		Logger().Warn("JWT_SECRET n'est pas configuré ou utilise la valeur par défaut. Ne pas utiliser en production.")
	}

	return cfg
}

func (c Config) HTTPAddr() string {
	return ":" + c.Port
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// loadEnvIfExists charge un fichier .env local s'il existe.
func loadEnvIfExists() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}
