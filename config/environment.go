package config

import (
	"os"
	"strings"
)

const (
	DefaultDatabaseURI = "app.db"
	DefaultPort        = "5555"
)

type Environment struct {
	DatabaseURI    string
	Port           string
	AllowedOrigins []string
	LogLevel       string
	SeedData       bool
	IsDevelopment  bool
}

var Env Environment

// LoadEnvironment reads the process environment into Env
func LoadEnvironment() Environment {
	dbURI := os.Getenv("DB_URI")
	if dbURI == "" {
		dbURI = DefaultDatabaseURI
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = DefaultPort
	}

	origins := []string{"http://localhost:3000", "http://localhost:4000"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	Env = Environment{
		DatabaseURI:    dbURI,
		Port:           port,
		AllowedOrigins: origins,
		LogLevel:       strings.ToLower(logLevel),
		SeedData:       strings.EqualFold(os.Getenv("SEED_DATA"), "true"),
		// Production deployments set this, local runs do not
		IsDevelopment: os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "",
	}

	return Env
}
